package get_payroll

import (
	"github.com/m04kA/SMC-WorkshopService/internal/service/payroll/models"
)

type PayrollService interface {
	Report() *models.PayrollResponse
}

type Logger interface {
	Info(format string, v ...interface{})
}
