package schedule_appointment

import (
	"context"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Customer, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByOwner(ctx context.Context, customerID int64, description string) (*domain.Vehicle, error)
}

// AppointmentRepository интерфейс репозитория записей на обслуживание
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (int64, error)
	GetByVehicleID(ctx context.Context, vehicleID int64) ([]*domain.Appointment, error)
}

// Metrics интерфейс счетчиков планировщика
type Metrics interface {
	AppointmentScheduled()
	ConflictRetry()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
