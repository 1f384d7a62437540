package schedule_appointment

import (
	"fmt"
	"strings"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehicleDescription) == "" {
		return fmt.Errorf("%w: vehicle description is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceName) == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}

	return nil
}
