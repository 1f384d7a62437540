package rebuild_calendars

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
	"github.com/m04kA/SMC-WorkshopService/internal/usecase/schedule_appointment"
	"github.com/m04kA/SMC-WorkshopService/pkg/metrics"
	"github.com/m04kA/SMC-WorkshopService/pkg/ptr"
)

// sessionStart is a Tuesday, so the board anchor is Monday 2026-09-07 08:00.
var sessionStart = time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

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
	customers    []*domain.Customer
	vehicles     []*domain.Vehicle
	appointments []*domain.Appointment
	created      int
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, customerStore.ErrCustomerNotFound
}

func (f *fakeStore) GetByName(_ context.Context, name string) (*domain.Customer, error) {
	for _, c := range f.customers {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, customerStore.ErrCustomerNotFound
}

type fakeVehicles struct{ store *fakeStore }

func (f fakeVehicles) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	for _, v := range f.store.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, vehicleStore.ErrVehicleNotFound
}

func (f fakeVehicles) GetByOwner(_ context.Context, customerID int64, description string) (*domain.Vehicle, error) {
	for _, v := range f.store.vehicles {
		if v.CustomerID == customerID && v.Description == description {
			return v, nil
		}
	}
	return nil, vehicleStore.ErrVehicleNotFound
}

type fakeAppointments struct{ store *fakeStore }

func (f fakeAppointments) Create(_ context.Context, appointment *domain.Appointment) (int64, error) {
	f.store.created++
	id := int64(len(f.store.appointments) + 1)
	stored := *appointment
	stored.ID = &id
	f.store.appointments = append(f.store.appointments, &stored)
	return id, nil
}

func (f fakeAppointments) LoadAll(_ context.Context) ([]*domain.Appointment, error) {
	return f.store.appointments, nil
}

func (f fakeAppointments) GetByVehicleID(_ context.Context, vehicleID int64) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range f.store.appointments {
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

func newEnv(t *testing.T, store *fakeStore) (*UseCase, *schedule.Board) {
	t.Helper()

	cat, err := catalog.Load(context.Background(), fakeLoader{})
	require.NoError(t, err)

	quant, err := schedule.NewQuantizer(cat.Durations())
	require.NoError(t, err)

	board := schedule.NewBoard(cat.LaneCount(), quant.SlotsPerDay())
	timeline := schedule.NewTimeline(sessionStart, quant.SlotSize())

	scheduler := schedule_appointment.NewUseCase(cat, board, timeline, quant.SlotSize(),
		store, fakeVehicles{store}, fakeAppointments{store}, metrics.Nop{}, nopLogger{})

	uc := NewUseCase(cat, timeline.Anchor(),
		fakeAppointments{store}, fakeVehicles{store}, store, scheduler, nopLogger{})

	return uc, board
}

func shopStore() *fakeStore {
	monday := time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC)
	return &fakeStore{
		customers: []*domain.Customer{
			{ID: 1, Name: "Ann"},
			{ID: 2, Name: "Bob"},
		},
		vehicles: []*domain.Vehicle{
			{ID: 1, CustomerID: 1, Description: "red sedan"},
			{ID: 2, CustomerID: 2, Description: "blue coupe"},
		},
		appointments: []*domain.Appointment{
			{
				ID: ptr.Ptr(int64(1)), VehicleID: 1, BayID: 1, ServiceID: 1,
				StartTime: monday, EndTime: monday.Add(30 * time.Minute),
			},
			{
				ID: ptr.Ptr(int64(2)), VehicleID: 2, BayID: 2, ServiceID: 2,
				StartTime: monday, EndTime: monday.Add(time.Hour),
			},
		},
	}
}

func TestExecuteReplaysPersistedAppointments(t *testing.T) {
	store := shopStore()
	uc, board := newEnv(t, store)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Replayed)
	assert.Equal(t, 0, resp.Skipped)
	// replay never writes back
	assert.Equal(t, 0, store.created)

	// booking order reproduces the original layout: oil change on bay 1,
	// tire replacement on bay 2, both at opening
	assert.True(t, board.Lane(0).IsOccupied(0, 0, 0))
	assert.True(t, board.Lane(1).IsOccupied(0, 0, 0))
	assert.True(t, board.Lane(1).IsOccupied(0, 0, 1))
	assert.False(t, board.Lane(0).IsOccupied(0, 0, 1))
}

func TestExecuteSkipsHistoryBeforeAnchor(t *testing.T) {
	store := shopStore()
	past := time.Date(2026, time.August, 24, 8, 0, 0, 0, time.UTC)
	store.appointments[0].StartTime = past
	store.appointments[0].EndTime = past.Add(30 * time.Minute)

	uc, board := newEnv(t, store)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Replayed)
	assert.Equal(t, 1, resp.Skipped)
	// the surviving appointment re-searches an empty board and wins the
	// lowest bay, regardless of where it was stored
	assert.True(t, board.Lane(0).IsOccupied(0, 0, 0))
	assert.True(t, board.Lane(0).IsOccupied(0, 0, 1))
	assert.False(t, board.Lane(1).IsOccupied(0, 0, 0))
}

func TestExecuteEmptyStoreIsFine(t *testing.T) {
	store := shopStore()
	store.appointments = nil

	uc, _ := newEnv(t, store)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Replayed)
}
