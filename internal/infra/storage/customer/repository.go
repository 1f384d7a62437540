package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/pkg/dbexec"
	"github.com/m04kA/SMC-WorkshopService/pkg/psqlbuilder"
)

// Repository репозиторий клиентов
type Repository struct {
	db dbexec.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbexec.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет нового клиента и возвращает его с присвоенным ID
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query, args, err := psqlbuilder.Insert("customers").
		Columns("name").
		Values(customer.Name).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&customer.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return customer, nil
}

// GetByName ищет клиента по имени. Имена уникальны: автомобили привязываются
// к владельцу по имени, поэтому дубликат сделал бы их неразличимыми
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Customer, error) {
	query, args, err := psqlbuilder.Select("id", "name").
		From("customers").
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&customer.ID, &customer.Name)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan customer: %v", ErrScanRow, err)
	}

	return &customer, nil
}

// GetByID ищет клиента по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query, args, err := psqlbuilder.Select("id", "name").
		From("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&customer.ID, &customer.Name)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %v", ErrScanRow, err)
	}

	return &customer, nil
}
