package field

// Raw passes values through unchanged in both directions, with no checks.
type Raw struct {
	Meta
}

func NewRaw(o Options) *Raw {
	return &Raw{Meta: newMeta(KindRaw, o)}
}

func (f *Raw) Load(value any, _ *Scope) (any, error) { return value, nil }

func (f *Raw) Dump(value any, _ *Scope) (any, error) { return value, nil }

// Func is a hand-written conversion of one direction.
type Func func(value any, s *Scope) (any, error)

// Callbacks delegates both directions to functions. None of the built-in
// checks run; a nil function passes the value through.
type Callbacks struct {
	Meta

	LoadFn Func
	DumpFn Func
}

func NewCallbacks(load, dump Func, o Options) *Callbacks {
	return &Callbacks{Meta: newMeta(KindCallbacks, o), LoadFn: load, DumpFn: dump}
}

func (f *Callbacks) Load(value any, s *Scope) (any, error) {
	if f.LoadFn == nil {
		return value, nil
	}

	return f.LoadFn(value, s.ensure())
}

func (f *Callbacks) Dump(value any, s *Scope) (any, error) {
	if f.DumpFn == nil {
		return value, nil
	}

	return f.DumpFn(value, s.ensure())
}
