package bootstrap

import "errors"

var (
	// ErrExecQuery возвращается при ошибке выполнения DDL запроса
	ErrExecQuery = errors.New("bootstrap.repository: failed to execute query")
)
