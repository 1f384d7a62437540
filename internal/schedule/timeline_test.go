package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2026-09-01 is a Tuesday; the following Monday is 2026-09-07.
var sessionStart = time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

func TestNextMonday(t *testing.T) {
	monday := NextMonday(sessionStart)
	assert.Equal(t, time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC), monday)
	assert.Equal(t, time.Monday, monday.Weekday())

	// called on a Monday, the anchor is still the *next* Monday
	monday = NextMonday(time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC), monday)
}

func TestTimelineBounds(t *testing.T) {
	tl := NewTimeline(sessionStart, 30)

	t.Run("first slot of week zero", func(t *testing.T) {
		start, end := tl.Bounds(Position{Week: 0, Day: 0, Slot: 0}, 30)
		assert.Equal(t, time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 9, 7, 8, 30, 0, 0, time.UTC), end)
	})

	t.Run("week and day offsets", func(t *testing.T) {
		start, end := tl.Bounds(Position{Week: 1, Day: 2, Slot: 2}, 60)
		assert.Equal(t, time.Date(2026, 9, 16, 9, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 9, 16, 10, 0, 0, 0, time.UTC), end)
	})

	t.Run("job ending exactly at lunch is untouched", func(t *testing.T) {
		// slot 7 = 11:30, 30 minutes ends at 12:00 sharp
		start, end := tl.Bounds(Position{Week: 0, Day: 0, Slot: 7}, 30)
		assert.Equal(t, time.Date(2026, 9, 7, 11, 30, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC), end)
	})

	t.Run("end strictly after lunch shifts by lunch length", func(t *testing.T) {
		// slot 7 = 11:30, 60 minutes raw end 12:30 -> 13:30
		start, end := tl.Bounds(Position{Week: 0, Day: 0, Slot: 7}, 60)
		assert.Equal(t, time.Date(2026, 9, 7, 11, 30, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 9, 7, 13, 30, 0, 0, time.UTC), end)
	})

	t.Run("start at lunch shifts both ends", func(t *testing.T) {
		// slot 8 = raw 12:00 -> the appointment starts after the break
		start, end := tl.Bounds(Position{Week: 0, Day: 0, Slot: 8}, 30)
		assert.Equal(t, time.Date(2026, 9, 7, 13, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 9, 7, 13, 30, 0, 0, time.UTC), end)
	})

	t.Run("afternoon slot", func(t *testing.T) {
		// slot 15 = raw 15:30, shifted to 16:30; raw end 16:00 -> 17:00
		start, end := tl.Bounds(Position{Week: 0, Day: 4, Slot: 15}, 30)
		assert.Equal(t, time.Date(2026, 9, 11, 16, 30, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 9, 11, 17, 0, 0, 0, time.UTC), end)
	})
}
