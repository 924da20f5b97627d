package application

import (
	"github.com/jericho-forum/jericho/internal/domain/entity"
	"github.com/jericho-forum/jericho/internal/identity"
)

// Error is a single failure inside a ServiceResult. Validation failures carry
// Field and Code; identity failures carry Code and Description.
type Error struct {
	Field       string `json:"field,omitempty"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// ServiceResult wraps a service outcome: either a value or a list of errors.
// Not-found is expressed as a failed result, never as a Go error.
type ServiceResult[T any] struct {
	Succeeded bool
	Value     T
	Errors    []Error
}

func Succeed[T any](v T) ServiceResult[T] {
	return ServiceResult[T]{Succeeded: true, Value: v}
}

func Failed[T any](errs ...Error) ServiceResult[T] {
	return ServiceResult[T]{Errors: errs}
}

func fromFieldErrors(errs []entity.FieldError) []Error {
	out := make([]Error, 0, len(errs))
	for _, e := range errs {
		out = append(out, Error{Field: e.Field, Code: e.Code})
	}
	return out
}

// fromIdentityErrors passes identity errors through without reinterpretation.
func fromIdentityErrors(errs []identity.Error) []Error {
	out := make([]Error, 0, len(errs))
	for _, e := range errs {
		out = append(out, Error{Code: e.Code, Description: e.Description})
	}
	return out
}
