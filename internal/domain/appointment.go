package domain

import (
	"sort"
	"time"
)

// Appointment represents a committed service appointment. The bay ID records
// which resource the work was assigned to; the mechanic follows from the bay.
// ID is nil until the appointment has been persisted.
type Appointment struct {
	ID        *int64
	VehicleID int64
	BayID     int64
	ServiceID int64
	StartTime time.Time
	EndTime   time.Time
}

// IsPersisted returns true if the appointment has a durable identifier.
func (a *Appointment) IsPersisted() bool {
	return a.ID != nil
}

// Overlaps reports whether two half-open intervals [start, end) intersect.
// Touching boundaries (one ends exactly when the other starts) do not overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}

// SortAppointmentsByStartTime sorts appointments by ascending start time.
func SortAppointmentsByStartTime(appointments []*Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].StartTime.Before(appointments[j].StartTime)
	})
}

// SortAppointmentsByID sorts appointments by ascending persisted identifier.
// Unpersisted appointments keep their relative order at the front.
func SortAppointmentsByID(appointments []*Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		if appointments[i].ID == nil || appointments[j].ID == nil {
			return appointments[j].ID != nil
		}
		return *appointments[i].ID < *appointments[j].ID
	})
}
