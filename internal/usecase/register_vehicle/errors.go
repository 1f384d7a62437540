package register_vehicle

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("register_vehicle: invalid input data")

	// ErrCustomerNotFound возвращается, когда владелец не зарегистрирован
	ErrCustomerNotFound = errors.New("register_vehicle: customer not found")

	// ErrVehicleAlreadyExists возвращается при повторной регистрации автомобиля
	ErrVehicleAlreadyExists = errors.New("register_vehicle: vehicle already exists")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_vehicle: internal error")
)
