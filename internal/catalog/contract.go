package catalog

import (
	"context"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
)

// Loader интерфейс хранилища для загрузки справочников при старте сессии
type Loader interface {
	LoadServices(ctx context.Context) ([]*domain.Service, error)
	LoadMechanics(ctx context.Context) ([]*domain.Mechanic, error)
	LoadBays(ctx context.Context) ([]*domain.Bay, error)
}
