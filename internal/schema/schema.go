// Package schema turns loosely-typed form input into validated, typed records.
//
// A Schema is an ordered list of fields, each normalized by a Rule built from
// the shared primitives in rules.go. Parsing either yields a Record with every
// coercion and default applied or a ValidationError naming each failing field.
// Schemas are stateless and safe for concurrent use.
package schema

import (
	"github.com/go-viper/mapstructure/v2"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
)

// FieldID is the identity field shared by every entity schema
const FieldID = "id"

// Field binds a Rule to an input key
type Field struct {
	Name string
	Rule Rule
}

// Key declares a field
func Key(name string, rule Rule) Field {
	return Field{Name: name, Rule: rule}
}

// Check runs after every field passed and may report cross-field failures
type Check func(rec Record) []FieldError

// Record is the normalized output of a successful parse
type Record map[string]any

// Schema describes one entity's input contract
type Schema struct {
	name   string
	fields []Field
	checks []Check
}

// New declares a schema; name is used in error messages and logs
func New(name string, fields ...Field) *Schema {
	return &Schema{name: name, fields: fields}
}

// Name returns the schema name
func (s *Schema) Name() string {
	return s.name
}

// FieldNames returns the declared field names in order
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// WithCheck returns a copy of the schema with an extra cross-field check
func (s *Schema) WithCheck(check Check) *Schema {
	out := s.clone()
	out.checks = append(out.checks, check)
	return out
}

// RequireID returns a copy of the schema for edit flows, where the id must be
// a non-empty string
func (s *Schema) RequireID(msg string) *Schema {
	out := s.clone()
	rule := RequiredString(msg)
	for i, f := range out.fields {
		if f.Name == FieldID {
			out.fields[i].Rule = rule
			return out
		}
	}
	out.fields = append([]Field{Key(FieldID, rule)}, out.fields...)
	return out
}

func (s *Schema) clone() *Schema {
	out := &Schema{
		name:   s.name,
		fields: make([]Field, len(s.fields)),
		checks: make([]Check, len(s.checks)),
	}
	copy(out.fields, s.fields)
	copy(out.checks, s.checks)
	return out
}

// Parse validates in against the schema. Keys the schema does not declare are
// dropped. The returned error wraps a *ValidationError and is marked
// ierr.ErrValidation.
func (s *Schema) Parse(in Input) (Record, error) {
	rec := make(Record, len(s.fields))
	var failures []FieldError

	for _, f := range s.fields {
		raw, present := in[f.Name]
		out, ok, msg := f.Rule(Value{Raw: raw, Present: present})
		if msg != "" {
			failures = append(failures, FieldError{Field: f.Name, Message: msg})
			continue
		}
		if ok {
			rec[f.Name] = out
		}
	}

	if len(failures) == 0 {
		for _, check := range s.checks {
			failures = append(failures, check(rec)...)
		}
	}

	if len(failures) > 0 {
		return nil, markValidation(&ValidationError{Schema: s.name, Errors: failures})
	}
	return rec, nil
}

// Decode parses in and decodes the record into a new T using its json tags
func Decode[T any](s *Schema, in Input) (*T, error) {
	out := new(T)
	if err := DecodeInto(s, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeInto parses in and writes the record over dst, a pointer to a struct.
// Fields the record leaves out keep their current value; nulls clear them.
func DecodeInto(s *Schema, in Input, dst any) error {
	rec, err := s.Parse(in)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		ZeroFields: true,
		Result:     dst,
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Could not prepare record decoder").
			Mark(ierr.ErrSystem)
	}

	if err := decoder.Decode(map[string]any(rec)); err != nil {
		return ierr.WithError(err).
			WithMessagef("decode %s record", s.name).
			WithHint("Could not read the submitted record").
			Mark(ierr.ErrSystem)
	}
	return nil
}
