package timetable

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-WorkshopService/internal/catalog"
	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/internal/service/timetable/models"
)

// Service сервис чтения расписания мастерской
type Service struct {
	catalog         *catalog.Catalog
	appointmentRepo AppointmentRepository
	vehicleRepo     VehicleRepository
	customerRepo    CustomerRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	cat *catalog.Catalog,
	appointmentRepo AppointmentRepository,
	vehicleRepo VehicleRepository,
	customerRepo CustomerRepository,
	logger Logger,
) *Service {
	return &Service{
		catalog:         cat,
		appointmentRepo: appointmentRepo,
		vehicleRepo:     vehicleRepo,
		customerRepo:    customerRepo,
		logger:          logger,
	}
}

// Get возвращает расписание всех механиков. Механики идут в порядке
// возрастания боксов, записи внутри механика сортируются по времени
// начала или по порядку бронирования
func (s *Service) Get(ctx context.Context, req *models.GetTimetableRequest) (*models.TimetableResponse, error) {
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = models.SortByTime
	}
	if sortBy != models.SortByTime && sortBy != models.SortByID {
		s.logger.Warn("GetTimetable: unknown sort mode %q", req.SortBy)
		return nil, fmt.Errorf("%w: %s", ErrInvalidSort, req.SortBy)
	}

	s.logger.Info("GetTimetable: fetching timetable sorted by %s", sortBy)

	appointments, err := s.appointmentRepo.LoadAll(ctx)
	if err != nil {
		s.logger.Error("GetTimetable: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	switch sortBy {
	case models.SortByTime:
		domain.SortAppointmentsByStartTime(appointments)
	case models.SortByID:
		domain.SortAppointmentsByID(appointments)
	}

	byBay := make(map[int64][]models.Entry)
	for _, appt := range appointments {
		entry, err := s.buildEntry(ctx, appt)
		if err != nil {
			return nil, err
		}
		byBay[appt.BayID] = append(byBay[appt.BayID], entry)
	}

	resp := &models.TimetableResponse{}
	for _, lane := range s.catalog.Lanes() {
		resp.Mechanics = append(resp.Mechanics, models.MechanicTimetable{
			MechanicName: lane.Mechanic.Name,
			BayID:        lane.Bay.ID,
			Appointments: byBay[lane.Bay.ID],
		})
	}

	s.logger.Info("GetTimetable: %d appointments across %d mechanics",
		len(appointments), len(resp.Mechanics))

	return resp, nil
}

// buildEntry собирает запись расписания с именами вместо идентификаторов
func (s *Service) buildEntry(ctx context.Context, appt *domain.Appointment) (models.Entry, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, appt.VehicleID)
	if err != nil {
		s.logger.Error("GetTimetable: failed to get vehicle id=%d: %v", appt.VehicleID, err)
		return models.Entry{}, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	customer, err := s.customerRepo.GetByID(ctx, vehicle.CustomerID)
	if err != nil {
		s.logger.Error("GetTimetable: failed to get customer id=%d: %v", vehicle.CustomerID, err)
		return models.Entry{}, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	service, err := s.catalog.ServiceByID(appt.ServiceID)
	if err != nil {
		s.logger.Error("GetTimetable: service id=%d is gone from the catalog", appt.ServiceID)
		return models.Entry{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	var id int64
	if appt.ID != nil {
		id = *appt.ID
	}

	return models.Entry{
		AppointmentID: id,
		CustomerName:  customer.Name,
		Vehicle:       vehicle.Description,
		ServiceName:   service.Name,
		StartTime:     appt.StartTime,
		EndTime:       appt.EndTime,
	}, nil
}
