// internal/error/error.go

package error

import (
	"errors"
	"fmt"
)

type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

type ErrorType int

const (
	BootstrapError ErrorType = iota
	UnlockError
	AgentError
	MetadataError
	ValidationError
)

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(errType ErrorType, message string, err error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// GetType zwraca typ błędu aplikacji lub -1, gdy błąd nie jest AppError
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorType(-1)
}
