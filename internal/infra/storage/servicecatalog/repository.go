package servicecatalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/pkg/dbexec"
	"github.com/m04kA/SMC-WorkshopService/pkg/psqlbuilder"
)

// Repository репозиторий справочника услуг
type Repository struct {
	db dbexec.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbexec.DBExecutor) *Repository {
	return &Repository{db: db}
}

// LoadServices загружает весь каталог услуг. Читается один раз при старте
// сессии планирования, дальше каталог используется только на чтение
func (r *Repository) LoadServices(ctx context.Context) ([]*domain.Service, error) {
	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes").
		From("services").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LoadServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: LoadServices - scan service: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
