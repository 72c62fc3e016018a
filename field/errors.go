package field

import (
	"errors"
	"fmt"
	"strings"

	"objmap/report"
)

var (
	ErrMissingValue      = errors.New("value is missing")
	ErrNullNotAllowed    = errors.New("value is null")
	ErrInvalidFieldInput = errors.New("invalid field input")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrValidation        = errors.New("validation failed")

	ErrDirection = errors.New("direction violation")
	ErrLoadOnly  = fmt.Errorf("%w: field is load only", ErrDirection)
	ErrDumpOnly  = fmt.Errorf("%w: field is dump only", ErrDirection)
)

// Op is the conversion direction.
type Op string

const (
	OpLoad Op = "load"
	OpDump Op = "dump"
)

// Error is a conversion failure of one field. Field is the path from the
// record root ("user.id", "tags[2]").
type Error struct {
	Field string
	Op    Op
	Value any
	Err   error
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Op, e.Field, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ValidationError is returned when a validator rejects a value. Reports holds
// what validators recorded during the call up to the failure.
type ValidationError struct {
	Field   string
	Value   any
	Reports report.List
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%v: invalid value %v in field %q", ErrValidation, e.Value, e.Field)
	if err := e.Reports.Error(); err != nil {
		msg += ": " + err.Error()
	}

	return msg
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Within places err under the path name. Field errors get their path
// prefixed; other errors become a field error of name.
func Within(name string, op Op, value any, err error) error {
	if fe, ok := err.(*Error); ok {
		return &Error{Field: JoinPath(name, fe.Field), Op: fe.Op, Value: fe.Value, Err: fe.Err}
	}

	return &Error{Field: name, Op: op, Value: value, Err: err}
}

// JoinPath joins two error path segments.
func JoinPath(parent, child string) string {
	switch {
	case parent == "":
		return child
	case child == "":
		return parent
	case strings.HasPrefix(child, "["):
		return parent + child
	default:
		return parent + "." + child
	}
}

func (m *Meta) fail(op Op, value any, err error) error {
	return &Error{Field: m.Label(), Op: op, Value: value, Err: err}
}
