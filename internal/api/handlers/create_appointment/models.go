package create_appointment

import (
	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	scheduleAppointment "github.com/m04kA/SMC-WorkshopService/internal/usecase/schedule_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerName string `json:"customerName"`
	Vehicle      string `json:"vehicle"`
	ServiceName  string `json:"serviceName"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	Vehicle      string `json:"vehicle"`
	ServiceName  string `json:"serviceName"`
	MechanicName string `json:"mechanicName"`
	BayID        int64  `json:"bayId"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *scheduleAppointment.Request {
	return &scheduleAppointment.Request{
		CustomerName:       r.CustomerName,
		VehicleDescription: r.Vehicle,
		ServiceName:        r.ServiceName,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *scheduleAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           resp.AppointmentID,
		CustomerName: resp.CustomerName,
		Vehicle:      resp.Vehicle,
		ServiceName:  resp.ServiceName,
		MechanicName: resp.MechanicName,
		BayID:        resp.BayID,
		StartTime:    resp.StartTime.Format(domain.StampFormat),
		EndTime:      resp.EndTime.Format(domain.StampFormat),
	}
}
