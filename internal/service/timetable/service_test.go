package timetable

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkshopService/internal/catalog"
	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	customerStore "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/customer"
	vehicleStore "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-WorkshopService/internal/service/timetable/models"
	"github.com/m04kA/SMC-WorkshopService/pkg/ptr"
)

type fakeLoader struct{}

func (fakeLoader) LoadServices(context.Context) ([]*domain.Service, error) {
	return []*domain.Service{
		{ID: 1, Name: "Oil Change", DurationMinutes: 30},
		{ID: 2, Name: "Tire Replacement", DurationMinutes: 60},
	}, nil
}

func (fakeLoader) LoadMechanics(context.Context) ([]*domain.Mechanic, error) {
	return []*domain.Mechanic{
		{ID: 1, Name: "Sue", HourlyRate: 10.00},
		{ID: 2, Name: "Steve", HourlyRate: 9.00},
	}, nil
}

func (fakeLoader) LoadBays(context.Context) ([]*domain.Bay, error) {
	return []*domain.Bay{
		{ID: 1, MechanicID: 1},
		{ID: 2, MechanicID: 2},
	}, nil
}

type fakeStore struct {
	appointments []*domain.Appointment
}

func (f *fakeStore) LoadAll(context.Context) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	vehicles := map[int64]*domain.Vehicle{
		1: {ID: 1, CustomerID: 1, Description: "red sedan"},
		2: {ID: 2, CustomerID: 2, Description: "blue coupe"},
	}
	v, ok := vehicles[id]
	if !ok {
		return nil, vehicleStore.ErrVehicleNotFound
	}
	return v, nil
}

type fakeCustomers struct{}

func (fakeCustomers) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	customers := map[int64]*domain.Customer{
		1: {ID: 1, Name: "Ann"},
		2: {ID: 2, Name: "Bob"},
	}
	c, ok := customers[id]
	if !ok {
		return nil, customerStore.ErrCustomerNotFound
	}
	return c, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T) *Service {
	t.Helper()

	cat, err := catalog.Load(context.Background(), fakeLoader{})
	require.NoError(t, err)

	monday := time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC)
	store := &fakeStore{appointments: []*domain.Appointment{
		// booked first but starts later
		{
			ID: ptr.Ptr(int64(1)), VehicleID: 1, BayID: 1, ServiceID: 2,
			StartTime: monday.Add(time.Hour), EndTime: monday.Add(2 * time.Hour),
		},
		{
			ID: ptr.Ptr(int64(2)), VehicleID: 2, BayID: 1, ServiceID: 1,
			StartTime: monday, EndTime: monday.Add(30 * time.Minute),
		},
		{
			ID: ptr.Ptr(int64(3)), VehicleID: 2, BayID: 2, ServiceID: 1,
			StartTime: monday, EndTime: monday.Add(30 * time.Minute),
		},
	}}

	return NewService(cat, store, store, fakeCustomers{}, nopLogger{})
}

func TestGetGroupsByMechanicInBayOrder(t *testing.T) {
	svc := newService(t)

	resp, err := svc.Get(context.Background(), &models.GetTimetableRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Mechanics, 2)
	assert.Equal(t, "Sue", resp.Mechanics[0].MechanicName)
	assert.Equal(t, "Steve", resp.Mechanics[1].MechanicName)
	assert.Len(t, resp.Mechanics[0].Appointments, 2)
	assert.Len(t, resp.Mechanics[1].Appointments, 1)
}

func TestGetDefaultSortIsByStartTime(t *testing.T) {
	svc := newService(t)

	resp, err := svc.Get(context.Background(), &models.GetTimetableRequest{})
	require.NoError(t, err)

	sue := resp.Mechanics[0].Appointments
	assert.Equal(t, int64(2), sue[0].AppointmentID)
	assert.Equal(t, "Bob", sue[0].CustomerName)
	assert.Equal(t, int64(1), sue[1].AppointmentID)
	assert.Equal(t, "Tire Replacement", sue[1].ServiceName)
}

func TestGetSortByBookingOrder(t *testing.T) {
	svc := newService(t)

	resp, err := svc.Get(context.Background(), &models.GetTimetableRequest{SortBy: models.SortByID})
	require.NoError(t, err)

	sue := resp.Mechanics[0].Appointments
	assert.Equal(t, int64(1), sue[0].AppointmentID)
	assert.Equal(t, int64(2), sue[1].AppointmentID)
}

func TestGetRejectsUnknownSortMode(t *testing.T) {
	svc := newService(t)

	_, err := svc.Get(context.Background(), &models.GetTimetableRequest{SortBy: "price"})
	assert.ErrorIs(t, err, ErrInvalidSort)
	assert.ErrorContains(t, err, "timetable:")
}
