package models

import "time"

// Режимы сортировки записей внутри расписания механика
const (
	SortByTime = "time" // по времени начала работ
	SortByID   = "id"   // по порядку бронирования
)

// GetTimetableRequest модель запроса расписания мастерской
type GetTimetableRequest struct {
	SortBy string // Режим сортировки, по умолчанию SortByTime
}

// Entry одна запись в расписании механика
type Entry struct {
	AppointmentID int64     `json:"appointment_id"`
	CustomerName  string    `json:"customer_name"`
	Vehicle       string    `json:"vehicle"`
	ServiceName   string    `json:"service_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
}

// MechanicTimetable расписание одного механика
type MechanicTimetable struct {
	MechanicName string  `json:"mechanic_name"`
	BayID        int64   `json:"bay_id"`
	Appointments []Entry `json:"appointments"`
}

// TimetableResponse расписание мастерской, механики в порядке боксов
type TimetableResponse struct {
	Mechanics []MechanicTimetable `json:"mechanics"`
}
