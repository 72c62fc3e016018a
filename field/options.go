package field

import (
	"slices"

	"objmap/datetime"
	"objmap/internal/common"
	"objmap/record"
	"objmap/report"
)

// Filter transforms a value before the field processes it.
type Filter interface {
	Filter(value any) any
}

// FilterFunc adapts a function to a Filter.
type FilterFunc func(value any) any

func (f FilterFunc) Filter(value any) any { return f(value) }

// Validator approves or rejects a value. The scope exposes the source record,
// the result built so far and the owning schema for cross-field rules.
type Validator interface {
	Validate(value any, s *Scope) bool
}

// ValidatorFunc adapts a function to a Validator.
type ValidatorFunc func(value any, s *Scope) bool

func (f ValidatorFunc) Validate(value any, s *Scope) bool { return f(value, s) }

// Reporter is implemented by validators that describe their last failure.
// The reports are collected after Validate returned false.
type Reporter interface {
	LastErrors() []report.ErrorReport
}

// Null used as Options.Default makes a missing value default to null.
var Null any = nullDefault{}

type nullDefault struct{}

// Ptr returns a pointer to v, for the optional settings of Options.
func Ptr[T any](v T) *T { return &v }

// Options configures every field kind. Settings that do not apply to a kind
// are ignored.
type Options struct {
	Name string
	// LocalName defaults to Name.
	LocalName string
	// RemoteName defaults to Name.
	RemoteName string

	DumpOnly bool
	LoadOnly bool

	// SkipIfUndefined defaults to skipping in both directions.
	SkipIfUndefined *Skip

	Required bool
	// Nullable defaults to true, or to false when Required is set.
	Nullable *bool
	// Default replaces a missing value. Nil means no default; use Null to
	// default to null. Composite kinds check the default against Nullable
	// but keep the missing value.
	Default any

	// Filters apply in order on load and in reverse order on dump.
	Filters []Filter
	// LoadFilters and DumpFilters replace Filters when either is set.
	LoadFilters []Filter
	DumpFilters []Filter

	// Validators apply in both directions.
	Validators []Validator
	// LoadValidators and DumpValidators replace Validators when either is set.
	LoadValidators []Validator
	DumpValidators []Validator

	// Formatter is used by the date kinds; datetime.Default when nil.
	Formatter datetime.Formatter
}

// Presence holds the missing and null policy of a field.
type Presence struct {
	Required bool
	Nullable bool
	// Default is meaningful only when HasDefault is set.
	Default    any
	HasDefault bool
}

func newPresence(o Options) Presence {
	p := Presence{Required: o.Required, Nullable: !o.Required}
	if o.Nullable != nil {
		p.Nullable = *o.Nullable
	}

	switch {
	case o.Default == Null:
		p.HasDefault = true
	case o.Default != nil && !record.IsUndefined(o.Default):
		p.Default = o.Default
		p.HasDefault = true
	}

	return p
}

type pipeline struct {
	loadFilters    []Filter
	dumpFilters    []Filter
	loadValidators []Validator
	dumpValidators []Validator
}

func newPipeline(o Options) pipeline {
	var p pipeline

	if o.LoadFilters != nil || o.DumpFilters != nil {
		p.loadFilters = slices.Clone(o.LoadFilters)
		p.dumpFilters = slices.Clone(o.DumpFilters)
	} else {
		p.loadFilters = slices.Clone(o.Filters)
		p.dumpFilters = common.Reversed(o.Filters)
	}

	if o.LoadValidators != nil || o.DumpValidators != nil {
		p.loadValidators = slices.Clone(o.LoadValidators)
		p.dumpValidators = slices.Clone(o.DumpValidators)
	} else {
		p.loadValidators = slices.Clone(o.Validators)
		p.dumpValidators = slices.Clone(o.Validators)
	}

	return p
}

func applyFilters(v any, filters []Filter) any {
	for _, f := range filters {
		v = f.Filter(v)
	}

	return v
}
