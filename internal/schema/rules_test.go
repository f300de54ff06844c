package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func present(raw any) Value { return Value{Raw: raw, Present: true} }

var absent = Value{}

func TestRequiredString(t *testing.T) {
	rule := RequiredString("Name is required")

	for name, v := range map[string]Value{
		"absent": absent,
		"null":   present(nil),
		"empty":  present(""),
	} {
		t.Run(name, func(t *testing.T) {
			_, ok, msg := rule(v)
			assert.False(t, ok)
			assert.Equal(t, "Name is required", msg)
		})
	}

	out, ok, msg := rule(present("Downtown"))
	assert.True(t, ok)
	assert.Empty(t, msg)
	assert.Equal(t, "Downtown", out)

	_, _, msg = rule(present(42))
	assert.Equal(t, MsgExpectedText, msg)
}

func TestBool(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want bool
	}{
		{"native true", present(true), true},
		{"native false", present(false), false},
		{"string true", present("true"), true},
		{"checkbox on", present("on"), true},
		{"string false", present("false"), false},
		{"empty string", present(""), false},
		{"other string", present("yes"), false},
		{"absent uses default", absent, true},
		{"null uses default", present(nil), true},
	}

	rule := Bool(true)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok, msg := rule(tt.in)
			assert.True(t, ok)
			assert.Empty(t, msg)
			assert.Equal(t, tt.want, out)
		})
	}

	_, _, msg := rule(present(1))
	assert.Equal(t, MsgExpectedBoolean, msg)
}

func TestOptionalBool(t *testing.T) {
	rule := OptionalBool()

	_, ok, msg := rule(absent)
	assert.False(t, ok, "absent must stay absent")
	assert.Empty(t, msg)

	out, ok, _ := rule(present("on"))
	assert.True(t, ok)
	assert.Equal(t, true, out)

	out, ok, _ = rule(present("false"))
	assert.True(t, ok)
	assert.Equal(t, false, out)
}

func TestNullableText(t *testing.T) {
	rule := NullableText()

	out, ok, _ := rule(present(""))
	assert.True(t, ok)
	assert.Nil(t, out)

	out, ok, _ = rule(present(nil))
	assert.True(t, ok)
	assert.Nil(t, out)

	_, ok, _ = rule(absent)
	assert.False(t, ok)

	out, ok, _ = rule(present("Near the station"))
	assert.True(t, ok)
	assert.Equal(t, "Near the station", out)
}

func TestEnum(t *testing.T) {
	values := []string{"pending", "sent", "failed", "read"}
	rule := Enum("Invalid status", values...)

	for _, v := range values {
		out, ok, msg := rule(present(v))
		assert.True(t, ok, v)
		assert.Empty(t, msg, v)
		assert.Equal(t, v, out)
	}

	for _, v := range []Value{present("archived"), present(""), present("PENDING"), absent, present(3)} {
		_, ok, msg := rule(v)
		assert.False(t, ok)
		assert.Equal(t, "Invalid status", msg)
	}
}

func TestEnumDefault(t *testing.T) {
	rule := EnumDefault("pending", "Invalid status", "pending", "sent")

	out, ok, _ := rule(absent)
	assert.True(t, ok)
	assert.Equal(t, "pending", out)

	_, _, msg := rule(present("archived"))
	assert.Equal(t, "Invalid status", msg)
}

func TestInt(t *testing.T) {
	rule := Int("Points are required", 0)

	for _, raw := range []any{"25", " 25 ", 25, int64(25), float64(25), json.Number("25")} {
		out, ok, msg := rule(present(raw))
		assert.True(t, ok, raw)
		assert.Empty(t, msg, raw)
		assert.Equal(t, int64(25), out)
	}

	_, _, msg := rule(present(""))
	assert.Equal(t, "Points are required", msg)

	_, _, msg = rule(present("2.5"))
	assert.Equal(t, MsgExpectedNumber, msg)

	_, _, msg = rule(present(float64(2.5)))
	assert.Equal(t, MsgExpectedNumber, msg)

	_, _, msg = rule(present("-1"))
	assert.Equal(t, "Must be at least 0", msg)
}

func TestOptionalInt(t *testing.T) {
	rule := OptionalInt(0)

	_, ok, msg := rule(present(""))
	assert.False(t, ok)
	assert.Empty(t, msg)

	out, ok, _ := rule(present("10"))
	assert.True(t, ok)
	assert.Equal(t, int64(10), out)
}

func TestOptionalDecimal(t *testing.T) {
	rule := OptionalDecimal("Invalid price")

	out, ok, _ := rule(present("12.50"))
	assert.True(t, ok)
	assert.True(t, decimal.RequireFromString("12.5").Equal(out.(decimal.Decimal)))

	out, ok, _ = rule(present(json.Number("3")))
	assert.True(t, ok)
	assert.True(t, decimal.NewFromInt(3).Equal(out.(decimal.Decimal)))

	_, _, msg := rule(present("-1"))
	assert.Equal(t, "Invalid price", msg)

	_, _, msg = rule(present("abc"))
	assert.Equal(t, "Invalid price", msg)

	_, ok, msg = rule(absent)
	assert.False(t, ok)
	assert.Empty(t, msg)
}

func TestJSON(t *testing.T) {
	rule := JSON(MsgExpectedObject)

	out, ok, _ := rule(present(`{"screen":"rewards"}`))
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"screen": "rewards"}, out)

	// form text decodes the same way as a JSON body
	out, ok, _ = rule(present(`{"points": 12345678901234567}`))
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"points": json.Number("12345678901234567")}, out)

	out, ok, _ = rule(present(map[string]any{"a": "b"}))
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"a": "b"}, out)

	_, _, msg := rule(present("[1,2]"))
	assert.Equal(t, MsgExpectedObject, msg)

	_, ok, msg = rule(present(""))
	assert.False(t, ok)
	assert.Empty(t, msg)
}

func TestOptionalTime(t *testing.T) {
	rule := OptionalTime("Invalid date")
	want := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	for _, raw := range []any{"2026-03-01T09:30:00Z", "2026-03-01T09:30:00", "2026-03-01T09:30", want} {
		out, ok, msg := rule(present(raw))
		assert.True(t, ok, raw)
		assert.Empty(t, msg, raw)
		assert.True(t, want.Equal(out.(time.Time)), raw)
	}

	_, _, msg := rule(present("tomorrow"))
	assert.Equal(t, "Invalid date", msg)
}

func TestEmail(t *testing.T) {
	rule := Email("Email is required", "Email is not valid")

	out, ok, msg := rule(present(" Ana@Example.com "))
	assert.True(t, ok)
	assert.Empty(t, msg)
	assert.Equal(t, "ana@example.com", out)

	_, _, msg = rule(present(""))
	assert.Equal(t, "Email is required", msg)

	_, _, msg = rule(present("ana@"))
	assert.Equal(t, "Email is not valid", msg)
}
