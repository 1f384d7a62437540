package schedule_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_appointment: invalid input data")

	// ErrCustomerNotFound возвращается, когда клиент не зарегистрирован
	ErrCustomerNotFound = errors.New("schedule_appointment: customer not found")

	// ErrVehicleNotFound возвращается, когда автомобиль не зарегистрирован
	ErrVehicleNotFound = errors.New("schedule_appointment: vehicle not found")

	// ErrServiceNotFound возвращается, когда услуга отсутствует в каталоге
	ErrServiceNotFound = errors.New("schedule_appointment: service not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_appointment: internal error")
)
