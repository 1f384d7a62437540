package get_schedule

import (
	"context"

	"github.com/m04kA/SMC-WorkshopService/internal/service/timetable/models"
)

type TimetableService interface {
	Get(ctx context.Context, req *models.GetTimetableRequest) (*models.TimetableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
