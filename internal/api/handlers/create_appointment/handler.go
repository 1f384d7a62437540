package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WorkshopService/internal/api/handlers"
	scheduleAppointment "github.com/m04kA/SMC-WorkshopService/internal/usecase/schedule_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные заявки"
	msgCustomerNotFound   = "клиент не найден"
	msgVehicleNotFound    = "автомобиль не найден"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	useCase ScheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, scheduleAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, scheduleAppointment.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: customer=%s", req.CustomerName)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, scheduleAppointment.ErrVehicleNotFound):
			h.logger.Warn("POST /appointments - Vehicle not found: customer=%s, vehicle=%s",
				req.CustomerName, req.Vehicle)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, scheduleAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service=%s", req.ServiceName)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /appointments - Failed to schedule: customer=%s, error=%v",
				req.CustomerName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment scheduled: id=%d, bay=%d",
		result.AppointmentID, result.BayID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
