package domain

// Mechanic represents a shop mechanic with an hourly pay rate.
type Mechanic struct {
	ID         int64
	Name       string
	HourlyRate float64 // non-negative
}

// Bay represents a work bay owned by exactly one mechanic.
// Ascending bay IDs establish scheduling priority: when several mechanics
// share the same earliest free slot, the one with the lower bay ID wins.
type Bay struct {
	ID         int64
	MechanicID int64
}
