package field

import (
	"fmt"
	"time"

	"objmap/datetime"
)

// temporal is shared by the date kinds; parse and format pick one of the
// formatter's operations.
type temporal struct {
	base

	formatter datetime.Formatter
	parse     func(f datetime.Formatter, inp string) (time.Time, error)
	format    func(f datetime.Formatter, t time.Time) string
}

func newTemporal(kind Kind, o Options) temporal {
	t := temporal{base: newBase(kind, o), formatter: o.Formatter}
	if t.formatter == nil {
		t.formatter = datetime.Default
	}

	switch kind {
	case KindDate:
		t.parse = datetime.Formatter.ParseDate
		t.format = datetime.Formatter.FormatDate
	case KindTime:
		t.parse = datetime.Formatter.ParseTime
		t.format = datetime.Formatter.FormatTime
	default:
		t.parse = datetime.Formatter.ParseDateTime
		t.format = datetime.Formatter.FormatDateTime
	}

	return t
}

func (t *temporal) Load(value any, s *Scope) (any, error) {
	return t.load(value, s, t.fromRemote)
}

func (t *temporal) Dump(value any, s *Scope) (any, error) {
	return t.dump(value, s, t.toRemote)
}

func (t *temporal) fromRemote(v any) (any, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case *time.Time:
		if x == nil {
			return nil, nil
		}

		return *x, nil
	case string:
		return t.parseString(x)
	default:
		return nil, fmt.Errorf("%w: %T is not a %s string", ErrInvalidFieldInput, v, t.Kind)
	}
}

func (t *temporal) toRemote(v any) (any, error) {
	switch x := v.(type) {
	case time.Time:
		return t.format(t.formatter, x), nil
	case *time.Time:
		if x == nil {
			return nil, nil
		}

		return t.format(t.formatter, *x), nil
	case string:
		parsed, err := t.parseString(x)
		if err != nil {
			return nil, err
		}

		return t.format(t.formatter, parsed), nil
	default:
		return nil, fmt.Errorf("%w: %T is not a time", ErrInvalidFieldInput, v)
	}
}

func (t *temporal) parseString(s string) (time.Time, error) {
	parsed, err := t.parse(t.formatter, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDateFormat, err)
	}

	return parsed, nil
}

// Date loads "YYYY-MM-DD" strings into time.Time and dumps them back.
type Date struct {
	temporal
}

func NewDate(o Options) *Date {
	return &Date{temporal: newTemporal(KindDate, o)}
}

// Time loads "HH:MM:SS[.mmm]" strings into time.Time on today's date.
type Time struct {
	temporal
}

func NewTime(o Options) *Time {
	return &Time{temporal: newTemporal(KindTime, o)}
}

// DateTime loads ISO-8601 date-time strings into time.Time.
type DateTime struct {
	temporal
}

func NewDateTime(o Options) *DateTime {
	return &DateTime{temporal: newTemporal(KindDateTime, o)}
}
