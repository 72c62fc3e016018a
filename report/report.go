// Package report holds the structured error reports that validators record
// while a schema loads or dumps a record.
package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorReport is an immutable description of one validation failure.
type ErrorReport struct {
	// Reason is the human-readable description.
	Reason string
	// Code is a numeric identifier chosen by the validator.
	Code int
	// Type classifies the failure (e.g. "range", "length").
	Type string
	// Field is the path of the field that failed (if any).
	Field string
	// Data is the value that caused the failure.
	Data any
	// Schema is the schema that processed the field (if any).
	Schema any
}

// String returns a formatted report string.
func (r ErrorReport) String() string {
	msg := r.Reason
	if r.Type != "" {
		msg = fmt.Sprintf("[%s:%d] %s", r.Type, r.Code, msg)
	}

	if r.Field != "" {
		return r.Field + ": " + msg
	}

	return msg
}

// List collects the reports of a single load or dump call.
type List struct {
	Reports []ErrorReport
}

// Add appends a report.
func (l *List) Add(r ErrorReport) {
	l.Reports = append(l.Reports, r)
}

// HasErrors returns true if any report was recorded.
func (l *List) HasErrors() bool {
	return l != nil && len(l.Reports) > 0
}

// Len returns the number of reports.
func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return len(l.Reports)
}

// Merge appends the reports of another list.
func (l *List) Merge(other *List) {
	if other == nil {
		return
	}

	l.Reports = append(l.Reports, other.Reports...)
}

// Error returns a combined error from all reports, or nil if there are none.
func (l *List) Error() error {
	if !l.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(l.Reports))
	for _, r := range l.Reports {
		parts = append(parts, r.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
