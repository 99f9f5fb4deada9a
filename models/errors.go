package models

import (
	"errors"
	"fmt"
)

// ErrorKind tags the failures the request layer knows how to answer.
type ErrorKind int

const (
	// Unhandled covers everything without a tag, e.g. a lost store connection.
	Unhandled ErrorKind = iota
	// ShapeError means the payload keys are not exactly the five exercise fields.
	ShapeError
	// FieldValidationError means a field has the wrong type or breaks its rule.
	FieldValidationError
	// CastError means an id is not a structurally valid ObjectID.
	CastError
)

func (k ErrorKind) String() string {
	switch k {
	case ShapeError:
		return "ShapeError"
	case FieldValidationError:
		return "FieldValidationError"
	case CastError:
		return "CastError"
	default:
		return "Unhandled"
	}
}

type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError tags err with kind.
func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the tag of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return Unhandled
}
