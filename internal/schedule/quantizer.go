package schedule

import (
	"errors"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
)

// ErrNoDurations is returned when the slot size cannot be derived because
// the service catalog is empty. Scheduling cannot proceed without it.
var ErrNoDurations = errors.New("schedule: no service durations to derive slot size from")

// Quantizer derives the shared slot duration for a scheduling session:
// the greatest common divisor of all service durations. Every calendar in
// the session uses the same slot size, so a service always occupies a whole
// number of slots. Computed once per session; the catalog is read-only.
type Quantizer struct {
	slotSize    int
	slotsPerDay int
}

// NewQuantizer computes the slot size over the full set of catalog durations.
func NewQuantizer(durationsMinutes []int) (*Quantizer, error) {
	if len(durationsMinutes) == 0 {
		return nil, ErrNoDurations
	}

	size := 0
	for _, d := range durationsMinutes {
		size = gcd(size, d)
		if size == 1 {
			// 1 minute is the smallest possible slot, no point continuing
			break
		}
	}

	return &Quantizer{
		slotSize:    size,
		slotsPerDay: domain.WorkMinutesPerDay / size,
	}, nil
}

// SlotSize returns the slot duration in minutes.
func (q *Quantizer) SlotSize() int {
	return q.slotSize
}

// SlotsPerDay returns the number of slots in one working day.
func (q *Quantizer) SlotsPerDay() int {
	return q.slotsPerDay
}

func gcd(a, b int) int {
	if a == 0 {
		return b
	}
	return gcd(b%a, a)
}
