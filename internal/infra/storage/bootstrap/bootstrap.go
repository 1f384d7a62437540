package bootstrap

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-WorkshopService/pkg/dbexec"
	"github.com/m04kA/SMC-WorkshopService/pkg/psqlbuilder"
)

// Repository создаёт и наполняет схему базы данных при первом запуске
type Repository struct {
	db dbexec.DBExecutor
}

// NewRepository создает новый экземпляр репозитория схемы
func NewRepository(db dbexec.DBExecutor) *Repository {
	return &Repository{db: db}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS mechanics (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(60) NOT NULL,
		hourly_rate NUMERIC(10, 2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(60) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customers (id),
		description VARCHAR(120) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		duration_minutes INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bays (
		id BIGSERIAL PRIMARY KEY,
		mechanic_id BIGINT NOT NULL REFERENCES mechanics (id)
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id BIGSERIAL PRIMARY KEY,
		vehicle_id BIGINT NOT NULL REFERENCES vehicles (id),
		bay_id BIGINT NOT NULL REFERENCES bays (id),
		service_id BIGINT NOT NULL REFERENCES services (id),
		start_time TIMESTAMPTZ NOT NULL,
		end_time TIMESTAMPTZ NOT NULL
	)`,
}

// таблицы в порядке, допускающем удаление при внешних ключах
var tables = []string{"appointments", "bays", "services", "vehicles", "customers", "mechanics"}

// Build создаёт таблицы, если их ещё нет, и при пустой базе наполняет
// справочники цеха: механики, услуги и боксы фиксированы для этого цеха
func (r *Repository) Build(ctx context.Context) error {
	for _, ddl := range schema {
		if _, err := r.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("%w: Build - create table: %v", ErrExecQuery, err)
		}
	}
	return r.seed(ctx)
}

// Drop удаляет все таблицы сервиса. Использовать только для обслуживания
func (r *Repository) Drop(ctx context.Context) error {
	for _, table := range tables {
		if _, err := r.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("%w: Drop - drop table %s: %v", ErrExecQuery, table, err)
		}
	}
	return nil
}

// seed наполняет справочники при первом запуске. Повторный запуск ничего
// не делает: наличие механиков - признак уже наполненной базы
func (r *Repository) seed(ctx context.Context) error {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM mechanics").Scan(&count); err != nil {
		return fmt.Errorf("%w: seed - count mechanics: %v", ErrExecQuery, err)
	}
	if count > 0 {
		return nil
	}

	mechanics := psqlbuilder.Insert("mechanics").Columns("name", "hourly_rate").
		Values("Sue", 10.00).
		Values("Steve", 9.00)

	services := psqlbuilder.Insert("services").Columns("name", "duration_minutes").
		Values("Oil Change", 30).
		Values("Tire Replacement", 60).
		Values("Brakes", 180).
		Values("Transmission Filter Replacement", 120).
		Values("Cooling System Cleaning", 240)

	// номера боксов задают приоритет: бокс 1 у Сью, бокс 2 у Стива
	bays := psqlbuilder.Insert("bays").Columns("mechanic_id").
		Values(1).
		Values(2)

	for _, builder := range []interface {
		ToSql() (string, []interface{}, error)
	}{mechanics, services, bays} {
		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("%w: seed - build insert: %v", ErrExecQuery, err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: seed - execute insert: %v", ErrExecQuery, err)
		}
	}

	return nil
}
