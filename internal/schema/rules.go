package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pointsclub/clubadmin/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Messages used when a value has the wrong shape altogether
const (
	MsgExpectedText    = "Expected a text value"
	MsgExpectedBoolean = "Expected true or false"
	MsgExpectedNumber  = "Expected a whole number"
	MsgExpectedObject  = "Expected a JSON object"
)

// Value is the raw value of one field and whether the key was submitted at all
type Value struct {
	Raw     any
	Present bool
}

// blank reports whether the value is absent, null or an empty string
func (v Value) blank() bool {
	if !v.Present || v.Raw == nil {
		return true
	}
	s, ok := v.Raw.(string)
	return ok && s == ""
}

// missing reports whether the value is absent or null
func (v Value) missing() bool {
	return !v.Present || v.Raw == nil
}

// Rule normalizes one raw value. keep=false leaves the field out of the
// record; a non-empty msg fails the field.
type Rule func(v Value) (out any, keep bool, msg string)

func fail(msg string) (any, bool, string) {
	return nil, false, msg
}

func skip() (any, bool, string) {
	return nil, false, ""
}

func keep(v any) (any, bool, string) {
	return v, true, ""
}

// RequiredString accepts a non-empty string. Empty strings, null and absent
// keys all fail with msg.
func RequiredString(msg string) Rule {
	return func(v Value) (any, bool, string) {
		if v.blank() {
			return fail(msg)
		}
		s, ok := v.Raw.(string)
		if !ok {
			return fail(MsgExpectedText)
		}
		return keep(s)
	}
}

// OptionalString accepts any string, including empty. Absent or null values
// are omitted.
func OptionalString() Rule {
	return func(v Value) (any, bool, string) {
		if v.missing() {
			return skip()
		}
		s, ok := v.Raw.(string)
		if !ok {
			return fail(MsgExpectedText)
		}
		return keep(s)
	}
}

// NullableText normalizes an empty string to null. Null stays null and an
// absent key stays absent.
func NullableText() Rule {
	return func(v Value) (any, bool, string) {
		if !v.Present {
			return skip()
		}
		if v.Raw == nil {
			return keep(nil)
		}
		s, ok := v.Raw.(string)
		if !ok {
			return fail(MsgExpectedText)
		}
		if s == "" {
			return keep(nil)
		}
		return keep(s)
	}
}

// coerceBool reads checkbox style values: "true" and "on" are true, every
// other string is false.
func coerceBool(raw any) (bool, bool) {
	switch b := raw.(type) {
	case bool:
		return b, true
	case string:
		return b == "true" || b == "on", true
	default:
		return false, false
	}
}

// Bool accepts a boolean or a checkbox string and fills def when absent
func Bool(def bool) Rule {
	return func(v Value) (any, bool, string) {
		if v.missing() {
			return keep(def)
		}
		b, ok := coerceBool(v.Raw)
		if !ok {
			return fail(MsgExpectedBoolean)
		}
		return keep(b)
	}
}

// OptionalBool is Bool without a default: absent stays absent
func OptionalBool() Rule {
	return func(v Value) (any, bool, string) {
		if v.missing() {
			return skip()
		}
		b, ok := coerceBool(v.Raw)
		if !ok {
			return fail(MsgExpectedBoolean)
		}
		return keep(b)
	}
}

// Enum accepts exactly one of values. Anything else, including an empty or
// absent value, fails with msg.
func Enum(msg string, values ...string) Rule {
	return func(v Value) (any, bool, string) {
		if v.missing() {
			return fail(msg)
		}
		s, ok := v.Raw.(string)
		if !ok || !lo.Contains(values, s) {
			return fail(msg)
		}
		return keep(s)
	}
}

// EnumDefault is Enum with def filled in when the key is absent or null
func EnumDefault(def string, msg string, values ...string) Rule {
	enum := Enum(msg, values...)
	return func(v Value) (any, bool, string) {
		if v.missing() {
			return keep(def)
		}
		return enum(v)
	}
}

// toInt64 converts form strings, JSON numbers and Go numerics to int64
func toInt64(raw any) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func checkInt(raw any, min int64) (any, bool, string) {
	i, ok := toInt64(raw)
	if !ok {
		return fail(MsgExpectedNumber)
	}
	if i < min {
		return fail(fmt.Sprintf("Must be at least %d", min))
	}
	return keep(i)
}

// Int requires a whole number not lower than min
func Int(msg string, min int64) Rule {
	return func(v Value) (any, bool, string) {
		if v.blank() {
			return fail(msg)
		}
		return checkInt(v.Raw, min)
	}
}

// OptionalInt accepts a whole number not lower than min, or nothing
func OptionalInt(min int64) Rule {
	return func(v Value) (any, bool, string) {
		if v.blank() {
			return skip()
		}
		return checkInt(v.Raw, min)
	}
}

// OptionalDecimal accepts a non-negative decimal amount, or nothing
func OptionalDecimal(msg string) Rule {
	return func(v Value) (any, bool, string) {
		if v.blank() {
			return skip()
		}
		var (
			d   decimal.Decimal
			err error
		)
		switch n := v.Raw.(type) {
		case string:
			d, err = decimal.NewFromString(strings.TrimSpace(n))
		case json.Number:
			d, err = decimal.NewFromString(n.String())
		case float64:
			d = decimal.NewFromFloat(n)
		case int64:
			d = decimal.NewFromInt(n)
		case int:
			d = decimal.NewFromInt(int64(n))
		case decimal.Decimal:
			d = n
		default:
			return fail(msg)
		}
		if err != nil || d.IsNegative() {
			return fail(msg)
		}
		return keep(d)
	}
}

// JSON accepts a nested object or its JSON text encoding. Text is decoded
// like a JSON body, numbers included. Empty values are omitted.
func JSON(msg string) Rule {
	return func(v Value) (any, bool, string) {
		if v.blank() {
			return skip()
		}
		switch obj := v.Raw.(type) {
		case map[string]any:
			return keep(obj)
		case string:
			out := map[string]any{}
			if err := jsonAPI.Unmarshal([]byte(obj), &out); err != nil {
				return fail(msg)
			}
			return keep(out)
		default:
			return fail(msg)
		}
	}
}

// accepted timestamp layouts, including the datetime-local input format
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// OptionalTime accepts a timestamp string or time.Time, or nothing
func OptionalTime(msg string) Rule {
	return func(v Value) (any, bool, string) {
		if v.blank() {
			return skip()
		}
		switch t := v.Raw.(type) {
		case time.Time:
			return keep(t.UTC())
		case string:
			for _, layout := range timeLayouts {
				if parsed, err := time.Parse(layout, t); err == nil {
					return keep(parsed.UTC())
				}
			}
			return fail(msg)
		default:
			return fail(msg)
		}
	}
}

// Email is RequiredString with an address format check
func Email(requiredMsg, invalidMsg string) Rule {
	required := RequiredString(requiredMsg)
	return func(v Value) (any, bool, string) {
		out, ok, msg := required(v)
		if msg != "" {
			return out, ok, msg
		}
		email := strings.TrimSpace(out.(string))
		if err := validator.ValidateVar(email, "email"); err != nil {
			return fail(invalidMsg)
		}
		return keep(strings.ToLower(email))
	}
}
