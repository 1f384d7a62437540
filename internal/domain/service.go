package domain

// Service represents a shop service from the catalog (e.g. "Oil Change").
// The catalog is loaded once per scheduling session and treated as read-only.
type Service struct {
	ID              int64
	Name            string // unique within the catalog
	DurationMinutes int    // positive, whole multiple of the session slot size
}

// SlotsNeeded returns how many slots of the given size the service occupies.
func (s *Service) SlotsNeeded(slotSizeMinutes int) int {
	return s.DurationMinutes / slotSizeMinutes
}
