package field

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies a field variant.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindStr
	KindNumeric
	KindInt
	KindBool
	KindDate
	KindTime
	KindDateTime
	KindNested
	KindList
	KindDict
	KindMap
	KindRaw
	KindCallbacks

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)
