// Package record provides the value model shared by fields and schemas.
//
// Remote data is a plain record (map[string]any) as produced by decoding JSON
// or YAML. Local data is either a plain record or a Go struct. Both are
// accessed through the Object interface, so fields never care which one they
// read from or write to.
//
// Two "empty" values are distinguished:
//
//   - Undefined: the attribute is absent from the record
//   - nil: the attribute is present and explicitly null
//
// Reading a missing key through Object.Get yields Undefined. Writing Undefined
// into a plain record stores nil, since Go maps have no notion of a present
// but undefined key.
package record
