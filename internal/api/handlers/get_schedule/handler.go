package get_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WorkshopService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkshopService/internal/service/timetable"
	"github.com/m04kA/SMC-WorkshopService/internal/service/timetable/models"
)

const msgInvalidSort = "некорректный режим сортировки, ожидается time или id"

type Handler struct {
	service TimetableService
	logger  Logger
}

func NewHandler(service TimetableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule?sort=time|id
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.GetTimetableRequest{
		SortBy: r.URL.Query().Get("sort"),
	}

	result, err := h.service.Get(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, timetable.ErrInvalidSort):
			h.logger.Warn("GET /schedule - Invalid sort mode: %q", req.SortBy)
			handlers.RespondBadRequest(w, msgInvalidSort)

		default:
			h.logger.Error("GET /schedule - Failed to build timetable: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - Timetable served for %d mechanics", len(result.Mechanics))
	handlers.RespondJSON(w, http.StatusOK, result)
}
