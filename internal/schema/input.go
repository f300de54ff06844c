package schema

import (
	"bytes"
	"io"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
)

var jsonAPI = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Input is raw, loosely-typed submission data keyed by field name.
// Values are strings and booleans from forms, or any JSON value.
type Input map[string]any

// FromForm builds an Input from url-encoded or multipart form values.
// The first value wins when a key is repeated.
func FromForm(values url.Values) Input {
	in := make(Input, len(values))
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		in[key] = vals[0]
	}
	return in
}

// FromJSON decodes a JSON object body into an Input. Numbers are kept as
// json.Number so integer fields do not lose precision.
func FromJSON(r io.Reader) (Input, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Could not read request body").
			Mark(ierr.ErrValidation)
	}

	in := Input{}
	if len(bytes.TrimSpace(body)) == 0 {
		return in, nil
	}
	if err := jsonAPI.Unmarshal(body, &in); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Request body must be a JSON object").
			Mark(ierr.ErrValidation)
	}
	return in, nil
}

// With returns a copy of the input with key set to value
func (in Input) With(key string, value any) Input {
	out := in.Clone()
	out[key] = value
	return out
}

// Clone returns a shallow copy of the input
func (in Input) Clone() Input {
	out := make(Input, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}
