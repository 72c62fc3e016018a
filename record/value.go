package record

// Undefined marks an attribute absent from a record.
var Undefined any = undefined{}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// MarshalJSON encodes Undefined as null so it never breaks encoding of a record
// it leaked into.
func (undefined) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// IsNull reports whether v is an explicit null.
func IsNull(v any) bool {
	return v == nil
}

// IsNullish reports whether v is either null or Undefined.
func IsNullish(v any) bool {
	return IsNull(v) || IsUndefined(v)
}
