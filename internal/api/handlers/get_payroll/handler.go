package get_payroll

import (
	"net/http"

	"github.com/m04kA/SMC-WorkshopService/internal/api/handlers"
)

type Handler struct {
	service PayrollService
	logger  Logger
}

func NewHandler(service PayrollService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payroll
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Report()

	h.logger.Info("GET /payroll - Report served for %d weeks", len(result.Weeks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
