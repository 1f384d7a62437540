package schedule_appointment

import "time"

// Request модель запроса на планирование обслуживания
type Request struct {
	CustomerName       string // Имя клиента (уникально)
	VehicleDescription string // Описание автомобиля клиента
	ServiceName        string // Название услуги из каталога

	// ExistingID заполняется только при восстановлении календарей на старте:
	// запись уже сохранена в базе и повторно не сохраняется
	ExistingID *int64
}

// Response модель ответа с запланированной записью
type Response struct {
	AppointmentID int64     // ID записи
	CustomerName  string    // Имя клиента
	Vehicle       string    // Описание автомобиля
	ServiceName   string    // Название услуги
	MechanicName  string    // Имя механика
	BayID         int64     // ID бокса
	StartTime     time.Time // Время начала работ
	EndTime       time.Time // Время окончания работ
}
