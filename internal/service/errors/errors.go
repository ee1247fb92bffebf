// Package errors provides custom errors for types implementing the Processor and Generator interfaces.
package errors

import "fmt"

type (
	ValidationError struct {
		Msg string
	}
	ForbiddenError struct {
		Msg string
	}
	NotFoundError struct {
		Code string
		Err  error
	}
	GenerationError struct {
		Err error
	}
	FoundNilStorage struct {
		Msg string
	}
	FoundNilGenerator struct {
		Msg string
	}
)

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ForbiddenError) Error() string {
	return e.Msg
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found", e.Code)
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: could not generate code", e.Err.Error())
}

func (e *FoundNilStorage) Error() string {
	return e.Msg
}

func (e *FoundNilGenerator) Error() string {
	return e.Msg
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
