// Package errors provides custom errors for types implementing the LinkStorage interface.
package errors

import (
	"fmt"
)

type (
	NotFoundError struct {
		Code string
		Err  error
	}
	AlreadyExistsError struct {
		Code string
		Err  error
	}
	ContextTimeoutExceededError struct {
		Err error
	}
	ExecutionError struct {
		Op  string
		Err error
	}
)

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found in storage", e.Code)
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: already exists in storage", e.Code)
}

func (e *ContextTimeoutExceededError) Error() string {
	return fmt.Sprintf("%s: context timeout exceeded", e.Err.Error())
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: could not %s", e.Err.Error(), e.Op)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func (e *AlreadyExistsError) Unwrap() error {
	return e.Err
}

func (e *ContextTimeoutExceededError) Unwrap() error {
	return e.Err
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
