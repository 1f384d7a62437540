package register_vehicle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	customerStore "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/customer"
	vehicleStore "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/vehicle"
)

// UseCase use case регистрации автомобиля клиента
type UseCase struct {
	customerRepo CustomerRepository
	vehicleRepo  VehicleRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(customerRepo CustomerRepository, vehicleRepo VehicleRepository, logger Logger) *UseCase {
	return &UseCase{
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		logger:       logger,
	}
}

// Execute выполняет use case регистрации автомобиля
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	name := strings.TrimSpace(req.CustomerName)
	description := strings.TrimSpace(req.Description)

	// 1. Валидация входных данных
	if name == "" {
		uc.logger.Warn("RegisterVehicle: empty customer name")
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if description == "" {
		uc.logger.Warn("RegisterVehicle: empty vehicle description")
		return nil, fmt.Errorf("%w: vehicle description is required", ErrInvalidInput)
	}

	// 2. Находим владельца
	customer, err := uc.customerRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, customerStore.ErrCustomerNotFound) {
			uc.logger.Warn("RegisterVehicle: customer %q not found", name)
			return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, name)
		}
		uc.logger.Error("RegisterVehicle: failed to get customer %q: %v", name, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 3. Пара владелец + описание уникальна, повторная регистрация запрещена
	_, err = uc.vehicleRepo.GetByOwner(ctx, customer.ID, description)
	if err == nil {
		uc.logger.Warn("RegisterVehicle: vehicle %q of customer %q already exists", description, name)
		return nil, fmt.Errorf("%w: %s", ErrVehicleAlreadyExists, description)
	}
	if !errors.Is(err, vehicleStore.ErrVehicleNotFound) {
		uc.logger.Error("RegisterVehicle: failed to check vehicle %q: %v", description, err)
		return nil, fmt.Errorf("%w: failed to check vehicle: %v", ErrInternal, err)
	}

	// 4. Сохраняем автомобиль
	created, err := uc.vehicleRepo.Create(ctx, &domain.Vehicle{
		CustomerID:  customer.ID,
		Description: description,
	})
	if err != nil {
		uc.logger.Error("RegisterVehicle: failed to create vehicle %q: %v", description, err)
		return nil, fmt.Errorf("%w: failed to create vehicle: %v", ErrInternal, err)
	}

	uc.logger.Info("RegisterVehicle: vehicle %q of customer %q registered with id=%d",
		created.Description, customer.Name, created.ID)

	return &Response{
		ID:          created.ID,
		CustomerID:  created.CustomerID,
		Description: created.Description,
	}, nil
}
