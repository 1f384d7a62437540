package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/pkg/dbexec"
	"github.com/m04kA/SMC-WorkshopService/pkg/psqlbuilder"
)

// Repository репозиторий автомобилей
type Repository struct {
	db dbexec.DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db dbexec.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый автомобиль и возвращает его с присвоенным ID
func (r *Repository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query, args, err := psqlbuilder.Insert("vehicles").
		Columns("customer_id", "description").
		Values(vehicle.CustomerID, vehicle.Description).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&vehicle.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return vehicle, nil
}

// GetByOwner ищет автомобиль по владельцу и описанию. Пара (владелец,
// описание) уникальна - заявки на обслуживание ссылаются именно на неё
func (r *Repository) GetByOwner(ctx context.Context, customerID int64, description string) (*domain.Vehicle, error) {
	query, args, err := psqlbuilder.Select("id", "customer_id", "description").
		From("vehicles").
		Where(squirrel.Eq{"customer_id": customerID, "description": description}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - build select query: %v", ErrBuildQuery, err)
	}

	var vehicle domain.Vehicle
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&vehicle.ID, &vehicle.CustomerID, &vehicle.Description)

	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - scan vehicle: %v", ErrScanRow, err)
	}

	return &vehicle, nil
}

// GetByID ищет автомобиль по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	query, args, err := psqlbuilder.Select("id", "customer_id", "description").
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var vehicle domain.Vehicle
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&vehicle.ID, &vehicle.CustomerID, &vehicle.Description)

	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %v", ErrScanRow, err)
	}

	return &vehicle, nil
}
