package domain

// Shop working schedule constants
const (
	WorkDaysPerWeek   = 5 // Monday..Friday
	WorkHoursPerDay   = 8
	WorkMinutesPerDay = WorkHoursPerDay * 60
	OpeningHour       = 8 // shop opens at 08:00
	OpeningMinute     = 0
	LunchHour         = 12 // lunch starts at 12:00
	LunchMinute       = 0
	LunchLengthHours  = 1
)

// Time format constants
const (
	TimeFormat  = "15:04"               // HH:MM
	DateFormat  = "2006-01-02"          // YYYY-MM-DD
	StampFormat = "2006-01-02 15:04:05" // timestamps in reports
)
