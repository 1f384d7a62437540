package schedule

// WeeklyWage converts a week's reserved-slot count into a wage. Mechanics
// are paid per booked slot; a week with no appointments pays exactly zero.
func WeeklyWage(slotSizeMinutes int, hourlyRate float64, reservedSlots int) float64 {
	return hourlyRate / 60 * float64(slotSizeMinutes) * float64(reservedSlots)
}
