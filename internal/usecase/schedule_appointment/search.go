package schedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/internal/schedule"
)

// placement результат подбора места: дорожка, позиция и границы по времени
type placement struct {
	lane    int
	pos     schedule.Position
	start   time.Time
	end     time.Time
	retries int
}

// findPlacement подбирает самое раннее место для записи с учетом уже
// существующих записей этого автомобиля. Поиск идет по копии доски:
// кандидат, пересекающийся по времени с другой записью автомобиля,
// помечается в копии как занятый (только стартовый слот) и поиск
// повторяется. Реальная доска при этом не меняется, поэтому отклоненные
// кандидаты остаются доступными для других автомобилей
func (uc *UseCase) findPlacement(slotsNeeded, durationMinutes int, taken []*domain.Appointment) placement {
	trial := uc.board.Snapshot()
	retries := 0

	for {
		lane, pos := trial.FindEarliest(slotsNeeded)
		start, end := uc.timeline.Bounds(pos, durationMinutes)

		if !overlapsAny(taken, start, end) {
			return placement{lane: lane, pos: pos, start: start, end: end, retries: retries}
		}

		trial.Lane(lane).Reserve(pos.Week, pos.Day, pos.Slot)
		retries++
		uc.metrics.ConflictRetry()
	}
}

// overlapsAny проверяет пересечение интервала [start, end) с записями.
// Касание границ пересечением не считается
func overlapsAny(taken []*domain.Appointment, start, end time.Time) bool {
	for _, appt := range taken {
		if appt.Overlaps(start, end) {
			return true
		}
	}
	return false
}
