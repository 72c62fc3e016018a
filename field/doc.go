// Package field implements the conversion units of a schema.
//
// A field converts one attribute between its remote form (decoded JSON or
// YAML) and its local form. Load goes remote to local, Dump goes local to
// remote. The primitive kinds (Str, Numeric, Int, Bool) and the date kinds
// (Date, Time, DateTime) share one pipeline:
//
//  1. direction check (DumpOnly, LoadOnly)
//  2. filters of the direction
//  3. missing resolution: record.Undefined takes the default or fails when
//     the field is required
//  4. null resolution: nil fails unless the field is nullable
//  5. validators of the direction
//  6. conversion of the remaining non-null value
//
// The container kinds (Nested, List, Dict, Map) apply only the required and
// nullable checks and delegate everything else to the fields or schema they
// wrap. Raw and Callbacks apply no checks at all.
//
// Fields are immutable once built and hold no per-call state; a Scope
// carries the state of one call.
package field
