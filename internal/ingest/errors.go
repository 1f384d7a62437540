package ingest

import "errors"

var (
	// ErrBadLine возвращается для строки с неизвестным типом или
	// неверным числом полей
	ErrBadLine = errors.New("ingest: malformed request line")

	// ErrLineFailed возвращается, когда строка не прошла обработку
	// и продолжение после ошибок выключено
	ErrLineFailed = errors.New("ingest: request line failed")

	// ErrRead возвращается при ошибке чтения входного потока
	ErrRead = errors.New("ingest: failed to read input")
)
