package schedule

import (
	"time"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
)

// Timeline converts slot coordinates into wall-clock timestamps. Week 0
// starts on the next Monday after session start, at shop opening time; the
// anchor is fixed once per session so every conversion agrees.
//
// The lunch break exists only in timestamps: the slot grid knows nothing
// about it, so a run whose raw span straddles the lunch boundary is shifted,
// not protected. This matches the behavior the shop has always had.
type Timeline struct {
	anchor   time.Time
	slotSize int
}

// NewTimeline anchors a timeline at the next Monday relative to now.
func NewTimeline(now time.Time, slotSizeMinutes int) *Timeline {
	return &Timeline{
		anchor:   NextMonday(now),
		slotSize: slotSizeMinutes,
	}
}

// Anchor returns the start of week 0 (next Monday at opening time).
func (t *Timeline) Anchor() time.Time {
	return t.anchor
}

// Bounds converts a slot position into start and end timestamps for a
// service of the given duration. The end is derived from the raw start
// before the lunch shift is applied to either, exactly as the original
// schedule math did: the start shifts when it falls at or after lunch, the
// end shifts when it falls strictly after lunch begins.
func (t *Timeline) Bounds(pos Position, durationMinutes int) (time.Time, time.Time) {
	rawStart := t.anchor.
		AddDate(0, 0, pos.Week*7+pos.Day).
		Add(time.Duration(pos.Slot*t.slotSize) * time.Minute)
	rawEnd := rawStart.Add(time.Duration(durationMinutes) * time.Minute)

	return shiftForLunch(rawStart, true), shiftForLunch(rawEnd, false)
}

// NextMonday returns the next Monday strictly after the given day, at shop
// opening time, in the same location.
func NextMonday(now time.Time) time.Time {
	daysAhead := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	monday := now.AddDate(0, 0, daysAhead)
	return time.Date(monday.Year(), monday.Month(), monday.Day(),
		domain.OpeningHour, domain.OpeningMinute, 0, 0, now.Location())
}

// shiftForLunch pushes a timestamp past the lunch break when it falls inside
// or beyond it. Start timestamps shift when at or after the lunch hour; end
// timestamps only when strictly after it, so a job ending exactly at lunch
// stays untouched.
func shiftForLunch(ts time.Time, isStart bool) time.Time {
	lunch := time.Date(ts.Year(), ts.Month(), ts.Day(),
		domain.LunchHour, domain.LunchMinute, 0, 0, ts.Location())

	if isStart {
		if ts.Before(lunch) {
			return ts
		}
	} else {
		if !ts.After(lunch) {
			return ts
		}
	}
	return ts.Add(time.Duration(domain.LunchLengthHours) * time.Hour)
}
