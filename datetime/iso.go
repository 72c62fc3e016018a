// Package datetime provides the date and time parse/format strategies used by
// the date kinds of package field.
package datetime

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var ErrInvalidFormat = errors.New("invalid date format")

// Formatter parses and formats date, time and date-time strings.
type Formatter interface {
	ParseDate(inp string) (time.Time, error)
	ParseTime(inp string) (time.Time, error)
	ParseDateTime(inp string) (time.Time, error)

	FormatDate(t time.Time) string
	FormatTime(t time.Time) string
	FormatDateTime(t time.Time) string
}

const (
	dateLayout     = "2006-01-02"
	zonedLayout    = "2006-01-02T15:04:05Z07:00"
	unzonedLayout  = "2006-01-02T15:04:05"
	timeOutLayout  = "15:04:05.000Z"
	stampOutLayout = "2006-01-02T15:04:05.000Z"
)

var (
	// TZRegexp matches an explicit zone designator at the end of a string.
	TZRegexp = regexp.MustCompile(`(Z|[+-]\d{2}:\d{2})$`)

	dateRegexp     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimeRegexp = regexp.MustCompile(
		`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2})(:\d{2}(?:\.\d+)?)?(Z|[+-]\d{2}:\d{2})?$`)
)

// Default is the formatter used when a date field has none configured.
var Default Formatter = NewIsoFormatter()

// IsoFormatter handles ISO-8601 strings.
//
// DefaultTimezone is appended to time-bearing inputs that carry no zone
// designator. When it is empty such inputs are read in the local time zone.
// Formatting always emits UTC with millisecond precision, and parsed values
// are truncated to milliseconds.
type IsoFormatter struct {
	DefaultTimezone string

	now func() time.Time
}

// NewIsoFormatter returns a formatter defaulting to UTC ("Z").
func NewIsoFormatter() *IsoFormatter {
	return &IsoFormatter{DefaultTimezone: "Z"}
}

// ParseDate parses "YYYY-MM-DD" as midnight UTC.
func (f *IsoFormatter) ParseDate(inp string) (time.Time, error) {
	if !dateRegexp.MatchString(inp) {
		return time.Time{}, fmt.Errorf("%w: %q is not a date", ErrInvalidFormat, inp)
	}

	t, err := time.Parse(dateLayout, inp)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return t, nil
}

// ParseTime parses "HH:MM[:SS[.fff]][zone]" on the current UTC day.
func (f *IsoFormatter) ParseTime(inp string) (time.Time, error) {
	today := f.clock().UTC().Format(dateLayout)

	t, err := f.ParseDateTime(today + "T" + inp)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a time", ErrInvalidFormat, inp)
	}

	return t, nil
}

// ParseDateTime parses "YYYY-MM-DDTHH:MM[:SS[.fff...]][zone]".
func (f *IsoFormatter) ParseDateTime(inp string) (time.Time, error) {
	m := dateTimeRegexp.FindStringSubmatch(inp)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a date-time", ErrInvalidFormat, inp)
	}

	seconds := m[2]
	if seconds == "" {
		seconds = ":00"
	}

	zone := m[3]
	if zone == "" {
		zone = f.DefaultTimezone
	}

	var (
		t   time.Time
		err error
	)

	if zone == "" {
		t, err = time.ParseInLocation(unzonedLayout, m[1]+seconds, time.Local)
	} else {
		t, err = time.Parse(zonedLayout, m[1]+seconds+zone)
	}

	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return t.Truncate(time.Millisecond), nil
}

func (f *IsoFormatter) FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func (f *IsoFormatter) FormatTime(t time.Time) string {
	return t.UTC().Format(timeOutLayout)
}

func (f *IsoFormatter) FormatDateTime(t time.Time) string {
	return t.UTC().Format(stampOutLayout)
}

func (f *IsoFormatter) clock() time.Time {
	if f.now != nil {
		return f.now()
	}

	return time.Now()
}
