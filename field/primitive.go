package field

// Str converts values to strings in both directions.
type Str struct {
	base
}

func NewStr(o Options) *Str {
	return &Str{base: newBase(KindStr, o)}
}

func (f *Str) Load(value any, s *Scope) (any, error) {
	return f.load(value, s, toString)
}

func (f *Str) Dump(value any, s *Scope) (any, error) {
	return f.dump(value, s, toString)
}

// Numeric converts values to float64 in both directions.
type Numeric struct {
	base
}

func NewNumeric(o Options) *Numeric {
	return &Numeric{base: newBase(KindNumeric, o)}
}

func (f *Numeric) Load(value any, s *Scope) (any, error) {
	return f.load(value, s, convertFloat)
}

func (f *Numeric) Dump(value any, s *Scope) (any, error) {
	return f.dump(value, s, convertFloat)
}

// Int converts values to int64, rounding fractions down.
type Int struct {
	base
}

func NewInt(o Options) *Int {
	return &Int{base: newBase(KindInt, o)}
}

func (f *Int) Load(value any, s *Scope) (any, error) {
	return f.load(value, s, convertInt)
}

func (f *Int) Dump(value any, s *Scope) (any, error) {
	return f.dump(value, s, convertInt)
}

// Bool converts values by truthiness. It never fails on conversion.
type Bool struct {
	base
}

func NewBool(o Options) *Bool {
	return &Bool{base: newBase(KindBool, o)}
}

func (f *Bool) Load(value any, s *Scope) (any, error) {
	return f.load(value, s, convertBool)
}

func (f *Bool) Dump(value any, s *Scope) (any, error) {
	return f.dump(value, s, convertBool)
}

func convertFloat(v any) (any, error) {
	f, err := toFloat(v)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func convertInt(v any) (any, error) {
	i, err := toInt(v)
	if err != nil {
		return nil, err
	}

	return i, nil
}

func convertBool(v any) (any, error) { return truthy(v), nil }
