package schedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WorkshopService/internal/catalog"
	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	customerStore "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/customer"
	vehicleStore "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-WorkshopService/internal/schedule"
)

// UseCase use case планирования обслуживания. Владеет доской календарей:
// все записи текущей сессии проходят через один экземпляр
type UseCase struct {
	catalog         *catalog.Catalog
	board           *schedule.Board
	timeline        *schedule.Timeline
	slotSize        int
	customerRepo    CustomerRepository
	vehicleRepo     VehicleRepository
	appointmentRepo AppointmentRepository
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cat *catalog.Catalog,
	board *schedule.Board,
	timeline *schedule.Timeline,
	slotSize int,
	customerRepo CustomerRepository,
	vehicleRepo VehicleRepository,
	appointmentRepo AppointmentRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:         cat,
		board:           board,
		timeline:        timeline,
		slotSize:        slotSize,
		customerRepo:    customerRepo,
		vehicleRepo:     vehicleRepo,
		appointmentRepo: appointmentRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case планирования обслуживания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScheduleAppointment: customer=%s, vehicle=%s, service=%s",
		req.CustomerName, req.VehicleDescription, req.ServiceName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Находим услугу в каталоге
	service, err := uc.catalog.ServiceByName(req.ServiceName)
	if err != nil {
		uc.logger.Warn("ScheduleAppointment: service %q not found in catalog", req.ServiceName)
		return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, req.ServiceName)
	}

	// 3. Находим клиента
	customer, err := uc.customerRepo.GetByName(ctx, req.CustomerName)
	if err != nil {
		if errors.Is(err, customerStore.ErrCustomerNotFound) {
			uc.logger.Warn("ScheduleAppointment: customer %q not found", req.CustomerName)
			return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, req.CustomerName)
		}
		uc.logger.Error("ScheduleAppointment: failed to get customer %q: %v", req.CustomerName, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 4. Находим автомобиль клиента
	vehicle, err := uc.vehicleRepo.GetByOwner(ctx, customer.ID, req.VehicleDescription)
	if err != nil {
		if errors.Is(err, vehicleStore.ErrVehicleNotFound) {
			uc.logger.Warn("ScheduleAppointment: vehicle %q of customer %q not found",
				req.VehicleDescription, req.CustomerName)
			return nil, fmt.Errorf("%w: %s", ErrVehicleNotFound, req.VehicleDescription)
		}
		uc.logger.Error("ScheduleAppointment: failed to get vehicle %q: %v", req.VehicleDescription, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 5. Загружаем существующие записи автомобиля и исключаем текущую
	// при восстановлении календарей
	taken, err := uc.appointmentRepo.GetByVehicleID(ctx, vehicle.ID)
	if err != nil {
		uc.logger.Error("ScheduleAppointment: failed to get appointments for vehicle id=%d: %v",
			vehicle.ID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle appointments: %v", ErrInternal, err)
	}
	taken = excludeAppointment(taken, req.ExistingID)

	// 6. Подбираем самое раннее место без пересечений по автомобилю
	slotsNeeded := service.SlotsNeeded(uc.slotSize)
	found := uc.findPlacement(slotsNeeded, service.DurationMinutes, taken)
	if found.retries > 0 {
		uc.logger.Info("ScheduleAppointment: vehicle id=%d conflicts resolved after %d retries",
			vehicle.ID, found.retries)
	}

	lane := uc.catalog.Lane(found.lane)

	// 7. Сохраняем запись. При восстановлении календарей запись уже
	// в базе, повторно не сохраняем
	appointment := &domain.Appointment{
		ID:        req.ExistingID,
		VehicleID: vehicle.ID,
		BayID:     lane.Bay.ID,
		ServiceID: service.ID,
		StartTime: found.start,
		EndTime:   found.end,
	}

	if req.ExistingID == nil {
		id, err := uc.appointmentRepo.Create(ctx, appointment)
		if err != nil {
			uc.logger.Error("ScheduleAppointment: failed to create appointment: %v", err)
			return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		appointment.ID = &id
	}

	// 8. Фиксируем слоты на доске
	uc.board.ReserveRun(found.lane, found.pos, slotsNeeded)
	uc.metrics.AppointmentScheduled()

	uc.logger.Info("ScheduleAppointment: appointment id=%d, bay=%d, start=%s",
		*appointment.ID, lane.Bay.ID, found.start.Format(domain.StampFormat))

	return &Response{
		AppointmentID: *appointment.ID,
		CustomerName:  customer.Name,
		Vehicle:       vehicle.Description,
		ServiceName:   service.Name,
		MechanicName:  lane.Mechanic.Name,
		BayID:         lane.Bay.ID,
		StartTime:     found.start,
		EndTime:       found.end,
	}, nil
}

// excludeAppointment убирает из списка запись с указанным идентификатором
func excludeAppointment(taken []*domain.Appointment, id *int64) []*domain.Appointment {
	if id == nil {
		return taken
	}

	filtered := make([]*domain.Appointment, 0, len(taken))
	for _, appt := range taken {
		if appt.ID != nil && *appt.ID == *id {
			continue
		}
		filtered = append(filtered, appt)
	}
	return filtered
}
