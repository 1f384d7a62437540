package register_customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	customerStore "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/customer"
)

// UseCase use case регистрации клиента
type UseCase struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(customerRepo CustomerRepository, logger Logger) *UseCase {
	return &UseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Execute выполняет use case регистрации клиента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	name := strings.TrimSpace(req.Name)

	// 1. Валидация входных данных
	if name == "" {
		uc.logger.Warn("RegisterCustomer: empty customer name")
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	// 2. Имена клиентов уникальны, повторная регистрация запрещена
	_, err := uc.customerRepo.GetByName(ctx, name)
	if err == nil {
		uc.logger.Warn("RegisterCustomer: customer %q already exists", name)
		return nil, fmt.Errorf("%w: %s", ErrCustomerAlreadyExists, name)
	}
	if !errors.Is(err, customerStore.ErrCustomerNotFound) {
		uc.logger.Error("RegisterCustomer: failed to check customer %q: %v", name, err)
		return nil, fmt.Errorf("%w: failed to check customer: %v", ErrInternal, err)
	}

	// 3. Сохраняем клиента
	created, err := uc.customerRepo.Create(ctx, &domain.Customer{Name: name})
	if err != nil {
		uc.logger.Error("RegisterCustomer: failed to create customer %q: %v", name, err)
		return nil, fmt.Errorf("%w: failed to create customer: %v", ErrInternal, err)
	}

	uc.logger.Info("RegisterCustomer: customer %q registered with id=%d", created.Name, created.ID)

	return &Response{
		ID:   created.ID,
		Name: created.Name,
	}, nil
}
