package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/pkg/dbexec"
	"github.com/m04kA/SMC-WorkshopService/pkg/psqlbuilder"
)

// Repository репозиторий записей на обслуживание
type Repository struct {
	db dbexec.DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db dbexec.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись и возвращает присвоенный идентификатор.
// Вызывается только для действительно новых записей: при восстановлении
// календарей на старте повторная запись в базу не выполняется
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (int64, error) {
	query, args, err := psqlbuilder.Insert("appointments").
		Columns("vehicle_id", "bay_id", "service_id", "start_time", "end_time").
		Values(
			appointment.VehicleID,
			appointment.BayID,
			appointment.ServiceID,
			appointment.StartTime,
			appointment.EndTime,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return id, nil
}

// LoadAll загружает все записи в порядке возрастания идентификатора.
// Порядок важен: восстановление календарей воспроизводит исходный порядок
// бронирования, чтобы получить тот же расклад по боксам
func (r *Repository) LoadAll(ctx context.Context) ([]*domain.Appointment, error) {
	query, args, err := selectAppointments().
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByVehicleID загружает записи автомобиля в порядке возрастания времени
// начала. Используется защитой от пересечений при планировании
func (r *Repository) GetByVehicleID(ctx context.Context, vehicleID int64) ([]*domain.Appointment, error) {
	query, args, err := selectAppointments().
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicleID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicleID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "vehicle_id", "bay_id", "service_id", "start_time", "end_time").
		From("appointments")
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var id int64

		err := rows.Scan(
			&id,
			&appt.VehicleID,
			&appt.BayID,
			&appt.ServiceID,
			&appt.StartTime,
			&appt.EndTime,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.ID = &id
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
