package timetable

import "errors"

var (
	// ErrInvalidSort возвращается при неизвестном режиме сортировки
	ErrInvalidSort = errors.New("timetable: invalid sort mode")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("timetable: internal error")
)
