package field

import (
	"objmap/record"
	"objmap/report"
)

// convertFunc is the kind-specific conversion of a present, non-null value.
type convertFunc func(value any) (any, error)

// base carries the load/dump pipeline shared by primitive and date kinds:
// direction check, filters, missing and null resolution, validators, then
// conversion.
type base struct {
	Meta
	Presence

	pipeline pipeline
}

func newBase(kind Kind, o Options) base {
	return base{
		Meta:     newMeta(kind, o),
		Presence: newPresence(o),
		pipeline: newPipeline(o),
	}
}

func (c *base) load(value any, s *Scope, convert convertFunc) (any, error) {
	if c.DumpOnly {
		return nil, c.fail(OpLoad, value, ErrDumpOnly)
	}

	return c.run(OpLoad, value, s, c.pipeline.loadFilters, c.pipeline.loadValidators, convert)
}

func (c *base) dump(value any, s *Scope, convert convertFunc) (any, error) {
	if c.LoadOnly {
		return nil, c.fail(OpDump, value, ErrLoadOnly)
	}

	return c.run(OpDump, value, s, c.pipeline.dumpFilters, c.pipeline.dumpValidators, convert)
}

func (c *base) run(
	op Op, value any, s *Scope,
	filters []Filter, validators []Validator,
	convert convertFunc,
) (any, error) {
	value = record.Indirect(applyFilters(value, filters))

	value, err := c.resolve(op, value)
	if err != nil {
		return nil, err
	}

	if err := c.validate(op, value, s, validators); err != nil {
		return nil, err
	}

	if record.IsNullish(value) {
		return value, nil
	}

	out, err := convert(value)
	if err != nil {
		return nil, c.fail(op, value, err)
	}

	return out, nil
}

// resolve substitutes the default for a missing value and enforces the
// required and nullable flags.
func (c *base) resolve(op Op, value any) (any, error) {
	if record.IsUndefined(value) {
		if c.Required && !c.HasDefault {
			return nil, c.fail(op, value, ErrMissingValue)
		}

		if c.HasDefault {
			value = c.Default
		}
	}

	if record.IsNull(value) && !c.Nullable {
		return nil, c.fail(op, value, ErrNullNotAllowed)
	}

	return value, nil
}

// validate runs validators until the first rejection.
func (c *base) validate(op Op, value any, s *Scope, validators []Validator) error {
	if len(validators) == 0 {
		return nil
	}

	s = s.ensure()
	label := c.Label()
	prev := s.Field
	before := s.Reports.Len()

	s.Field = label
	defer func() { s.Field = prev }()

	for _, v := range validators {
		if v.Validate(value, s) {
			continue
		}

		if r, ok := v.(Reporter); ok {
			for _, e := range r.LastErrors() {
				if e.Field == "" {
					e.Field = label
				}

				if e.Schema == nil && s.Schema != nil {
					e.Schema = s.Schema
				}

				s.Reports.Add(e)
			}
		}

		verr := &ValidationError{Field: label, Value: value}
		verr.Reports.Merge(&report.List{Reports: s.Reports.Reports[before:]})

		return c.fail(op, value, verr)
	}

	return nil
}
