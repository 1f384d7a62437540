package register_vehicle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	customerStore "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/customer"
	vehicleStore "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/vehicle"
)

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
	nextID   int64
}

func (f *fakeVehicleRepo) Create(_ context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	f.nextID++
	created := &domain.Vehicle{
		ID:          f.nextID,
		CustomerID:  vehicle.CustomerID,
		Description: vehicle.Description,
	}
	f.vehicles = append(f.vehicles, created)
	return created, nil
}

func (f *fakeVehicleRepo) GetByOwner(_ context.Context, customerID int64, description string) (*domain.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.CustomerID == customerID && v.Description == description {
			return v, nil
		}
	}
	return nil, vehicleStore.ErrVehicleNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase() (*UseCase, *fakeVehicleRepo) {
	customers := &fakeCustomerRepo{customers: map[string]*domain.Customer{
		"Ann": {ID: 1, Name: "Ann"},
	}}
	vehicles := &fakeVehicleRepo{}
	return NewUseCase(customers, vehicles, nopLogger{}), vehicles
}

func TestExecuteRegistersVehicle(t *testing.T) {
	uc, _ := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerName: "Ann",
		Description:  "red sedan",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(1), resp.CustomerID)
	assert.Equal(t, "red sedan", resp.Description)
}

func TestExecuteRejectsDuplicateVehicle(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{CustomerName: "Ann", Description: "red sedan"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, &Request{CustomerName: "Ann", Description: "red sedan"})
	assert.ErrorIs(t, err, ErrVehicleAlreadyExists)
}

func TestExecuteUnknownCustomerFails(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		CustomerName: "Zoe",
		Description:  "red sedan",
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecuteRejectsEmptyInput(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{CustomerName: "", Description: "red sedan"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{CustomerName: "Ann", Description: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
