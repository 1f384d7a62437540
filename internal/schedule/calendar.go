package schedule

import "github.com/m04kA/SMC-WorkshopService/internal/domain"

// Position addresses a single slot in a calendar: week 0 is the week starting
// next Monday, day 0 is Monday, slot 0 is the first slot after opening.
type Position struct {
	Week int
	Day  int
	Slot int
}

// Before reports whether p addresses an earlier slot than other.
func (p Position) Before(other Position) bool {
	if p.Week != other.Week {
		return p.Week < other.Week
	}
	if p.Day != other.Day {
		return p.Day < other.Day
	}
	return p.Slot < other.Slot
}

// Calendar is one mechanic's occupancy grid. Weeks are appended lazily and
// never removed; a reserved slot is never released (the engine has no
// cancellation). Slots beyond the current extent are implicitly free.
type Calendar struct {
	slotsPerDay int
	weeks       [][][]bool // [week][day][slot]
}

// NewCalendar creates an empty calendar with a single allocated week.
func NewCalendar(slotsPerDay int) *Calendar {
	c := &Calendar{slotsPerDay: slotsPerDay}
	c.addWeek()
	return c
}

func (c *Calendar) addWeek() {
	week := make([][]bool, domain.WorkDaysPerWeek)
	for d := range week {
		week[d] = make([]bool, c.slotsPerDay)
	}
	c.weeks = append(c.weeks, week)
}

// WeekCount returns the number of allocated weeks.
func (c *Calendar) WeekCount() int {
	return len(c.weeks)
}

// SlotsPerDay returns the grid width of one day.
func (c *Calendar) SlotsPerDay() int {
	return c.slotsPerDay
}

// Reserve marks a slot occupied, allocating weeks up to the requested one.
// Day and slot indices are produced by the engine within valid ranges.
func (c *Calendar) Reserve(week, day, slot int) {
	for week > len(c.weeks)-1 {
		c.addWeek()
	}
	c.weeks[week][day][slot] = true
}

// IsOccupied reports whether the slot is reserved. Weeks beyond the current
// extent are entirely free, so they answer false instead of erroring.
func (c *Calendar) IsOccupied(week, day, slot int) bool {
	if week > len(c.weeks)-1 {
		return false
	}
	return c.weeks[week][day][slot]
}

// ReservedCount returns the total number of occupied slots in a week,
// 0 for unallocated weeks.
func (c *Calendar) ReservedCount(week int) int {
	if week > len(c.weeks)-1 {
		return 0
	}
	total := 0
	for _, day := range c.weeks[week] {
		for _, occupied := range day {
			if occupied {
				total++
			}
		}
	}
	return total
}

// Snapshot returns an independent deep copy. Reservations made on either
// copy after the snapshot are invisible to the other; speculative trial
// bookings rely on this.
func (c *Calendar) Snapshot() *Calendar {
	clone := &Calendar{
		slotsPerDay: c.slotsPerDay,
		weeks:       make([][][]bool, len(c.weeks)),
	}
	for w, week := range c.weeks {
		cloneWeek := make([][]bool, len(week))
		for d, day := range week {
			cloneDay := make([]bool, len(day))
			copy(cloneDay, day)
			cloneWeek[d] = cloneDay
		}
		clone.weeks[w] = cloneWeek
	}
	return clone
}

// earliest finds the first position holding slotsNeeded consecutive free
// slots wholly within one day. Runs never cross a day boundary. If the
// allocated extent is exhausted, the first slot of the next (entirely free)
// week is the answer, which bounds the search.
func (c *Calendar) earliest(slotsNeeded int) Position {
	for week := 0; week < len(c.weeks); week++ {
		for day := 0; day < domain.WorkDaysPerWeek; day++ {
			for slot := 0; slot+slotsNeeded <= c.slotsPerDay; slot++ {
				if c.runFree(week, day, slot, slotsNeeded) {
					return Position{Week: week, Day: day, Slot: slot}
				}
			}
		}
	}
	return Position{Week: len(c.weeks), Day: 0, Slot: 0}
}

func (c *Calendar) runFree(week, day, slot, slotsNeeded int) bool {
	for k := 0; k < slotsNeeded; k++ {
		if c.IsOccupied(week, day, slot+k) {
			return false
		}
	}
	return true
}

// Board holds every mechanic's calendar in ascending bay order, so that the
// lane index doubles as the priority rank used for tie-breaking.
type Board struct {
	slotsPerDay int
	lanes       []*Calendar
}

// NewBoard creates a board of laneCount empty calendars.
func NewBoard(laneCount, slotsPerDay int) *Board {
	b := &Board{slotsPerDay: slotsPerDay}
	for i := 0; i < laneCount; i++ {
		b.lanes = append(b.lanes, NewCalendar(slotsPerDay))
	}
	return b
}

// LaneCount returns the number of calendars on the board.
func (b *Board) LaneCount() int {
	return len(b.lanes)
}

// Lane returns the calendar at the given priority rank.
func (b *Board) Lane(i int) *Calendar {
	return b.lanes[i]
}

// FindEarliest returns the lane and position of the globally earliest run of
// slotsNeeded free slots. When several lanes share the same earliest
// position, the lowest lane index (= lowest bay ID) wins.
func (b *Board) FindEarliest(slotsNeeded int) (int, Position) {
	bestLane := 0
	bestPos := b.lanes[0].earliest(slotsNeeded)
	for i := 1; i < len(b.lanes); i++ {
		if pos := b.lanes[i].earliest(slotsNeeded); pos.Before(bestPos) {
			bestLane = i
			bestPos = pos
		}
	}
	return bestLane, bestPos
}

// ReserveRun reserves slotsNeeded consecutive slots starting at pos.
func (b *Board) ReserveRun(lane int, pos Position, slotsNeeded int) {
	for k := 0; k < slotsNeeded; k++ {
		b.lanes[lane].Reserve(pos.Week, pos.Day, pos.Slot+k)
	}
}

// Snapshot deep-copies every lane. Used for speculative trial bookings so a
// rejected candidate never pollutes the committed calendars.
func (b *Board) Snapshot() *Board {
	clone := &Board{slotsPerDay: b.slotsPerDay}
	for _, lane := range b.lanes {
		clone.lanes = append(clone.lanes, lane.Snapshot())
	}
	return clone
}
