package rebuild_calendars

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("rebuild_calendars: internal error")
)
