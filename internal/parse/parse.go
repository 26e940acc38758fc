// Package parse extracts JSON values from free-form model output.
package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"regexp"
)

// objectPattern matches from the first '{' to the last '}' in the text.
var objectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// Parse attempts a strict decode of text and, failing that, a decode of the
// outermost brace-delimited span. It returns false when neither succeeds.
// A bare JSON null decodes cleanly but carries nothing, so it also reports
// false.
func Parse(text string) (any, bool) {
	if v, err := decode(text); err == nil {
		return v, v != nil
	}
	m := objectPattern.FindString(text)
	if m == "" {
		return nil, false
	}
	v, err := decode(m)
	if err != nil {
		return nil, false
	}
	return v, true
}

// decode parses exactly one JSON value, keeping numbers as json.Number so
// integers survive a round trip unchanged.
func decode(s string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("parse: trailing data after JSON value")
	}
	return v, nil
}
