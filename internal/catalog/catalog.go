package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
)

// Lane связывает механика с его боксом. Дорожки отсортированы по возрастанию
// номера бокса: индекс дорожки совпадает с индексом календаря на Board и
// задаёт приоритет механика при равных слотах.
type Lane struct {
	Mechanic *domain.Mechanic
	Bay      *domain.Bay
}

// Catalog справочники сессии планирования: услуги, механики, боксы.
// Загружается один раз при старте и дальше только читается.
type Catalog struct {
	services       []*domain.Service
	servicesByID   map[int64]*domain.Service
	servicesByName map[string]*domain.Service
	lanes          []Lane
}

// Load читает справочники из хранилища и валидирует конфигурацию цеха.
// Пустой каталог услуг и механик без бокса - фатальные ошибки конфигурации:
// планирование в таком цехе невозможно в принципе.
func Load(ctx context.Context, loader Loader) (*Catalog, error) {
	services, err := loader.LoadServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - load services: %v", ErrInternal, err)
	}
	if len(services) == 0 {
		return nil, ErrNoServices
	}

	mechanics, err := loader.LoadMechanics(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - load mechanics: %v", ErrInternal, err)
	}

	bays, err := loader.LoadBays(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - load bays: %v", ErrInternal, err)
	}

	c := &Catalog{
		servicesByID:   make(map[int64]*domain.Service, len(services)),
		servicesByName: make(map[string]*domain.Service, len(services)),
	}

	for _, svc := range services {
		if svc.DurationMinutes > domain.WorkMinutesPerDay {
			return nil, fmt.Errorf("%w: %q takes %d minutes", ErrServiceTooLong, svc.Name, svc.DurationMinutes)
		}
		c.services = append(c.services, svc)
		c.servicesByID[svc.ID] = svc
		c.servicesByName[svc.Name] = svc
	}

	// каждому механику нужен ровно один бокс
	baysByMechanic := make(map[int64]*domain.Bay, len(bays))
	for _, bay := range bays {
		baysByMechanic[bay.MechanicID] = bay
	}
	for _, mech := range mechanics {
		bay, ok := baysByMechanic[mech.ID]
		if !ok {
			return nil, fmt.Errorf("%w: mechanic %q (id=%d)", ErrMechanicWithoutBay, mech.Name, mech.ID)
		}
		c.lanes = append(c.lanes, Lane{Mechanic: mech, Bay: bay})
	}

	// порядок дорожек = приоритет: меньший номер бокса выигрывает ничьи
	sort.Slice(c.lanes, func(i, j int) bool {
		return c.lanes[i].Bay.ID < c.lanes[j].Bay.ID
	})

	return c, nil
}

// Durations возвращает длительности всех услуг каталога (для квантователя).
func (c *Catalog) Durations() []int {
	durations := make([]int, 0, len(c.services))
	for _, svc := range c.services {
		durations = append(durations, svc.DurationMinutes)
	}
	return durations
}

// Services возвращает все услуги каталога.
func (c *Catalog) Services() []*domain.Service {
	return c.services
}

// ServiceByName ищет услугу по имени.
func (c *Catalog) ServiceByName(name string) (*domain.Service, error) {
	svc, ok := c.servicesByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: name=%q", ErrServiceNotFound, name)
	}
	return svc, nil
}

// ServiceByID ищет услугу по идентификатору.
func (c *Catalog) ServiceByID(id int64) (*domain.Service, error) {
	svc, ok := c.servicesByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
	}
	return svc, nil
}

// Lanes возвращает дорожки в порядке приоритета (по возрастанию номера бокса).
func (c *Catalog) Lanes() []Lane {
	return c.lanes
}

// LaneCount возвращает количество дорожек (механиков).
func (c *Catalog) LaneCount() int {
	return len(c.lanes)
}

// Lane возвращает дорожку по индексу приоритета.
func (c *Catalog) Lane(i int) Lane {
	return c.lanes[i]
}

// LaneByBayID ищет дорожку по номеру бокса.
func (c *Catalog) LaneByBayID(bayID int64) (Lane, error) {
	for _, lane := range c.lanes {
		if lane.Bay.ID == bayID {
			return lane, nil
		}
	}
	return Lane{}, fmt.Errorf("%w: id=%d", ErrBayNotFound, bayID)
}
