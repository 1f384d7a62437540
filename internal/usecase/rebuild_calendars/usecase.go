package rebuild_calendars

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkshopService/internal/catalog"
	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/internal/usecase/schedule_appointment"
)

// UseCase use case восстановления календарей при старте сессии. Доска
// живет только в памяти, поэтому сохраненные записи повторно размещаются
// планировщиком в исходном порядке бронирования (по возрастанию id):
// при том же порядке поиск дает те же боксы и те же слоты
type UseCase struct {
	catalog         *catalog.Catalog
	anchor          time.Time
	appointmentRepo AppointmentRepository
	vehicleRepo     VehicleRepository
	customerRepo    CustomerRepository
	scheduler       Scheduler
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cat *catalog.Catalog,
	anchor time.Time,
	appointmentRepo AppointmentRepository,
	vehicleRepo VehicleRepository,
	customerRepo CustomerRepository,
	scheduler Scheduler,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:         cat,
		anchor:          anchor,
		appointmentRepo: appointmentRepo,
		vehicleRepo:     vehicleRepo,
		customerRepo:    customerRepo,
		scheduler:       scheduler,
		logger:          logger,
	}
}

// Execute выполняет use case восстановления календарей
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Загружаем все записи в порядке бронирования
	appointments, err := uc.appointmentRepo.LoadAll(ctx)
	if err != nil {
		uc.logger.Error("RebuildCalendars: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	resp := &Response{}

	for _, appt := range appointments {
		// 2. Записи раньше якоря доски остаются историей
		if appt.StartTime.Before(uc.anchor) {
			resp.Skipped++
			continue
		}

		// 3. Повторно размещаем запись на доске
		if err := uc.replay(ctx, appt); err != nil {
			return nil, err
		}
		resp.Replayed++
	}

	uc.logger.Info("RebuildCalendars: %d appointments replayed, %d in the past",
		resp.Replayed, resp.Skipped)

	return resp, nil
}

// replay прогоняет сохраненную запись через планировщик без повторного
// сохранения в базу
func (uc *UseCase) replay(ctx context.Context, appt *domain.Appointment) error {
	vehicle, err := uc.vehicleRepo.GetByID(ctx, appt.VehicleID)
	if err != nil {
		uc.logger.Error("RebuildCalendars: failed to get vehicle id=%d: %v", appt.VehicleID, err)
		return fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	customer, err := uc.customerRepo.GetByID(ctx, vehicle.CustomerID)
	if err != nil {
		uc.logger.Error("RebuildCalendars: failed to get customer id=%d: %v", vehicle.CustomerID, err)
		return fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	service, err := uc.catalog.ServiceByID(appt.ServiceID)
	if err != nil {
		uc.logger.Error("RebuildCalendars: service id=%d is gone from the catalog", appt.ServiceID)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	placed, err := uc.scheduler.Execute(ctx, &schedule_appointment.Request{
		CustomerName:       customer.Name,
		VehicleDescription: vehicle.Description,
		ServiceName:        service.Name,
		ExistingID:         appt.ID,
	})
	if err != nil {
		uc.logger.Error("RebuildCalendars: failed to replay appointment id=%d: %v", *appt.ID, err)
		return fmt.Errorf("%w: failed to replay appointment: %v", ErrInternal, err)
	}

	if !placed.StartTime.Equal(appt.StartTime) {
		uc.logger.Warn("RebuildCalendars: appointment id=%d moved from %s to %s on replay",
			*appt.ID,
			appt.StartTime.Format(domain.StampFormat),
			placed.StartTime.Format(domain.StampFormat))
	}

	return nil
}
