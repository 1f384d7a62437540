package ingest

import (
	"context"

	"github.com/m04kA/SMC-WorkshopService/internal/usecase/register_customer"
	"github.com/m04kA/SMC-WorkshopService/internal/usecase/register_vehicle"
	"github.com/m04kA/SMC-WorkshopService/internal/usecase/schedule_appointment"
)

// CustomerRegistrar интерфейс use case регистрации клиента
type CustomerRegistrar interface {
	Execute(ctx context.Context, req *register_customer.Request) (*register_customer.Response, error)
}

// VehicleRegistrar интерфейс use case регистрации автомобиля
type VehicleRegistrar interface {
	Execute(ctx context.Context, req *register_vehicle.Request) (*register_vehicle.Response, error)
}

// Scheduler интерфейс use case планирования обслуживания
type Scheduler interface {
	Execute(ctx context.Context, req *schedule_appointment.Request) (*schedule_appointment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
