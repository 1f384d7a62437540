package register_customer

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("register_customer: invalid input data")

	// ErrCustomerAlreadyExists возвращается при повторной регистрации имени
	ErrCustomerAlreadyExists = errors.New("register_customer: customer already exists")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_customer: internal error")
)
