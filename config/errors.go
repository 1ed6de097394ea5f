package config

import (
	"errors"
	"fmt"
)

// Причины ошибок конфигурации, проверяются через errors.Is.
var (
	ErrMissingVariable = errors.New("missing required variable")
	ErrInvalidInteger  = errors.New("invalid integer")
	ErrNotPositive     = errors.New("value must be positive")
	ErrSummaryBounds   = errors.New("summary bounds inverted")
	ErrEnvFile         = errors.New("env file")
)

// Error ошибка конфигурации. Единственный тип ошибки, который возвращает Load.
type Error struct {
	Reason error
	Msg    string
}

func newError(reason error, format string, args ...any) *Error {
	return &Error{Reason: reason, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return "config: " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Reason
}
