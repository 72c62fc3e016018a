package field

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// toString renders a value the way a remote consumer would expect to read
// it: decimal numbers in shortest form, booleans as true/false.
func toString(v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return formatFloat(t, 64), nil
	case float32:
		return formatFloat(float64(t), 32), nil
	case json.Number:
		return t.String(), nil
	case []byte:
		return string(t), nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		return t.String(), nil
	case error:
		return t.Error(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return formatFloat(rv.Float(), 32), nil
	case reflect.Float64:
		return formatFloat(rv.Float(), 64), nil
	default:
		return fmt.Sprint(v), nil
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'e', -1, bits)
	default:
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
}

// toFloat coerces a value to a number. NaN and non-numeric input fail.
func toFloat(v any) (float64, error) {
	f, ok := numeric(v)
	if !ok || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %v is not a number", ErrInvalidFieldInput, v)
	}

	return f, nil
}

func numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		return parseNumber(t.String())
	case string:
		return parseNumber(t)
	case bool:
		if t {
			return 1, true
		}

		return 0, true
	case time.Time:
		return float64(t.UnixMilli()), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		return parseNumber(rv.String())
	case reflect.Bool:
		return numeric(rv.Bool())
	default:
		return 0, false
	}
}

var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// parseNumber reads the numeric string forms a remote record may carry:
// signed decimals with an optional exponent, signed Infinity, and unsigned
// 0x, 0o and 0b integers. An empty or blank string is zero.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	switch s {
	case "":
		return 0, true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseDigits(s[2:], 16)
		case 'o', 'O':
			return parseDigits(s[2:], 8)
		case 'b', 'B':
			return parseDigits(s[2:], 2)
		}
	}

	if !decimalNumber.MatchString(s) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return f, true
}

// parseDigits reads an unsigned integer in base. Values past 2^53 lose
// precision the way a float64 does.
func parseDigits(s string, base int) (float64, bool) {
	var f float64

	for _, r := range s {
		d := strings.IndexRune("0123456789abcdef", unicode.ToLower(r))
		if d < 0 || d >= base {
			return 0, false
		}

		f = f*float64(base) + float64(d)
	}

	return f, true
}

// toInt coerces a value to an integer, rounding toward negative infinity.
// Integer kinds are taken as is to keep full 64-bit precision.
func toInt(v any) (int64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %v overflows int64", ErrInvalidFieldInput, v)
		}

		return int64(rv.Uint()), nil
	default:
	}

	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}

	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}

	f = math.Floor(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v overflows int64", ErrInvalidFieldInput, v)
	}

	return int64(f), nil
}

// truthy reports whether a value counts as true: false, zero numbers, NaN
// and empty strings do not.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, ok := parseNumber(t.String())
		return ok && f != 0 && !math.IsNaN(f)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0 && !math.IsNaN(rv.Float())
	default:
		return true
	}
}
