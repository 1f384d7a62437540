package schedule_appointment

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
	"github.com/m04kA/SMC-WorkshopService/internal/schedule"
	"github.com/m04kA/SMC-WorkshopService/pkg/metrics"
)

// sessionStart is a Tuesday, so week 0 is anchored at Monday 2026-09-07 08:00.
var sessionStart = time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

type fakeLoader struct{}

func (fakeLoader) LoadServices(context.Context) ([]*domain.Service, error) {
	return []*domain.Service{
		{ID: 1, Name: "Oil Change", DurationMinutes: 30},
		{ID: 2, Name: "Tire Replacement", DurationMinutes: 60},
		{ID: 3, Name: "Engine Overhaul", DurationMinutes: 270},
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

type fakeCustomerRepo struct {
	customers map[string]*domain.Customer
}

func (f *fakeCustomerRepo) GetByName(_ context.Context, name string) (*domain.Customer, error) {
	c, ok := f.customers[name]
	if !ok {
		return nil, customerStore.ErrCustomerNotFound
	}
	return c, nil
}

type fakeVehicleRepo struct {
	vehicles []*domain.Vehicle
}

func (f *fakeVehicleRepo) GetByOwner(_ context.Context, customerID int64, description string) (*domain.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.CustomerID == customerID && v.Description == description {
			return v, nil
		}
	}
	return nil, vehicleStore.ErrVehicleNotFound
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	nextID       int64
	created      int
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (int64, error) {
	f.nextID++
	id := f.nextID
	stored := *appointment
	stored.ID = &id
	f.appointments = append(f.appointments, &stored)
	f.created++
	return id, nil
}

func (f *fakeAppointmentRepo) GetByVehicleID(_ context.Context, vehicleID int64) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range f.appointments {
		if a.VehicleID == vehicleID {
			result = append(result, a)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	uc       *UseCase
	board    *schedule.Board
	apptRepo *fakeAppointmentRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cat, err := catalog.Load(context.Background(), fakeLoader{})
	require.NoError(t, err)

	quant, err := schedule.NewQuantizer(cat.Durations())
	require.NoError(t, err)

	board := schedule.NewBoard(cat.LaneCount(), quant.SlotsPerDay())
	timeline := schedule.NewTimeline(sessionStart, quant.SlotSize())

	customers := &fakeCustomerRepo{customers: map[string]*domain.Customer{
		"Ann": {ID: 1, Name: "Ann"},
		"Bob": {ID: 2, Name: "Bob"},
	}}
	vehicles := &fakeVehicleRepo{vehicles: []*domain.Vehicle{
		{ID: 1, CustomerID: 1, Description: "red sedan"},
		{ID: 2, CustomerID: 1, Description: "old pickup"},
		{ID: 3, CustomerID: 2, Description: "blue coupe"},
	}}
	apptRepo := &fakeAppointmentRepo{}

	uc := NewUseCase(cat, board, timeline, quant.SlotSize(),
		customers, vehicles, apptRepo, metrics.Nop{}, nopLogger{})

	return &testEnv{uc: uc, board: board, apptRepo: apptRepo}
}

func (e *testEnv) schedule(t *testing.T, customer, vehicle, service string) *Response {
	t.Helper()
	resp, err := e.uc.Execute(context.Background(), &Request{
		CustomerName:       customer,
		VehicleDescription: vehicle,
		ServiceName:        service,
	})
	require.NoError(t, err)
	return resp
}

func TestExecuteFirstAppointmentOpensTheWeek(t *testing.T) {
	env := newTestEnv(t)

	resp := env.schedule(t, "Ann", "red sedan", "Oil Change")

	want := time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, want, resp.StartTime)
	assert.Equal(t, want.Add(30*time.Minute), resp.EndTime)
	assert.Equal(t, int64(1), resp.BayID)
	assert.Equal(t, "Sue", resp.MechanicName)
	assert.Equal(t, int64(1), resp.AppointmentID)
}

func TestExecuteTieBreaksOnLowerBay(t *testing.T) {
	env := newTestEnv(t)

	first := env.schedule(t, "Ann", "red sedan", "Oil Change")
	second := env.schedule(t, "Bob", "blue coupe", "Oil Change")

	// both bays were free at 08:00; the second vehicle gets the same
	// start on the higher bay
	assert.Equal(t, first.StartTime, second.StartTime)
	assert.Equal(t, int64(1), first.BayID)
	assert.Equal(t, int64(2), second.BayID)
	assert.Equal(t, "Steve", second.MechanicName)
}

func TestExecuteDisplacesSameVehicleConflict(t *testing.T) {
	env := newTestEnv(t)

	first := env.schedule(t, "Ann", "red sedan", "Oil Change")
	second := env.schedule(t, "Ann", "red sedan", "Oil Change")

	// bay 2 at 08:00 is free but overlaps the vehicle's own first
	// appointment, so the second lands at 08:30 where the intervals
	// only touch
	assert.Equal(t, first.EndTime, second.StartTime)
	assert.Equal(t, int64(1), second.BayID)

	// the rejected 08:00 slot on bay 2 stays free for other vehicles
	third := env.schedule(t, "Bob", "blue coupe", "Oil Change")
	assert.Equal(t, first.StartTime, third.StartTime)
	assert.Equal(t, int64(2), third.BayID)
}

func TestExecuteOtherVehicleOfSameCustomerDoesNotConflict(t *testing.T) {
	env := newTestEnv(t)

	first := env.schedule(t, "Ann", "red sedan", "Oil Change")
	second := env.schedule(t, "Ann", "old pickup", "Oil Change")

	// conflicts are per vehicle, not per customer
	assert.Equal(t, first.StartTime, second.StartTime)
	assert.Equal(t, int64(2), second.BayID)
}

func TestExecuteLongServiceShiftsPastLunch(t *testing.T) {
	env := newTestEnv(t)

	resp := env.schedule(t, "Ann", "red sedan", "Engine Overhaul")

	// the raw end 12:30 falls past noon and shifts by the lunch hour
	assert.Equal(t, time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC), resp.StartTime)
	assert.Equal(t, time.Date(2026, time.September, 7, 13, 30, 0, 0, time.UTC), resp.EndTime)
}

func TestExecuteReplayDoesNotPersistAgain(t *testing.T) {
	env := newTestEnv(t)

	existingID := int64(7)
	env.apptRepo.appointments = append(env.apptRepo.appointments, &domain.Appointment{
		ID:        &existingID,
		VehicleID: 1,
		BayID:     1,
		ServiceID: 1,
		StartTime: time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, time.September, 7, 8, 30, 0, 0, time.UTC),
	})

	resp, err := env.uc.Execute(context.Background(), &Request{
		CustomerName:       "Ann",
		VehicleDescription: "red sedan",
		ServiceName:        "Oil Change",
		ExistingID:         &existingID,
	})
	require.NoError(t, err)

	assert.Equal(t, existingID, resp.AppointmentID)
	assert.Equal(t, 0, env.apptRepo.created)
	// the stored window does not block its own replay
	assert.Equal(t, time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC), resp.StartTime)
	assert.True(t, env.board.Lane(0).IsOccupied(0, 0, 0))
}

func TestExecuteUnknownNamesFail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.uc.Execute(ctx, &Request{
		CustomerName: "Zoe", VehicleDescription: "red sedan", ServiceName: "Oil Change",
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = env.uc.Execute(ctx, &Request{
		CustomerName: "Ann", VehicleDescription: "green van", ServiceName: "Oil Change",
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	_, err = env.uc.Execute(ctx, &Request{
		CustomerName: "Ann", VehicleDescription: "red sedan", ServiceName: "Detailing",
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = env.uc.Execute(ctx, &Request{
		CustomerName: "", VehicleDescription: "red sedan", ServiceName: "Oil Change",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
