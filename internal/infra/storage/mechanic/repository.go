package mechanic

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/pkg/dbexec"
	"github.com/m04kA/SMC-WorkshopService/pkg/psqlbuilder"
)

// Repository репозиторий механиков и их боксов
type Repository struct {
	db dbexec.DBExecutor
}

// NewRepository создает новый экземпляр репозитория механиков
func NewRepository(db dbexec.DBExecutor) *Repository {
	return &Repository{db: db}
}

// LoadMechanics загружает всех механиков цеха
func (r *Repository) LoadMechanics(ctx context.Context) ([]*domain.Mechanic, error) {
	query, args, err := psqlbuilder.Select("id", "name", "hourly_rate").
		From("mechanics").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LoadMechanics - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadMechanics - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	mechanics := make([]*domain.Mechanic, 0)
	for rows.Next() {
		var mech domain.Mechanic
		if err := rows.Scan(&mech.ID, &mech.Name, &mech.HourlyRate); err != nil {
			return nil, fmt.Errorf("%w: LoadMechanics - scan mechanic: %v", ErrScanRow, err)
		}
		mechanics = append(mechanics, &mech)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadMechanics - rows error: %v", ErrScanRow, err)
	}

	return mechanics, nil
}

// LoadBays загружает все боксы цеха. Номер бокса задаёт приоритет механика
func (r *Repository) LoadBays(ctx context.Context) ([]*domain.Bay, error) {
	query, args, err := psqlbuilder.Select("id", "mechanic_id").
		From("bays").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LoadBays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadBays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bays := make([]*domain.Bay, 0)
	for rows.Next() {
		var bay domain.Bay
		if err := rows.Scan(&bay.ID, &bay.MechanicID); err != nil {
			return nil, fmt.Errorf("%w: LoadBays - scan bay: %v", ErrScanRow, err)
		}
		bays = append(bays, &bay)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadBays - rows error: %v", ErrScanRow, err)
	}

	return bays, nil
}
