package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSON is returned when the reply holds no delimited JSON value
var ErrNoJSON = errors.New("no json found")

// Result is the outcome of a parse that may fail
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the parse succeeded
func (r Result[T]) OK() bool { return r.Err == nil }

// OrZero returns the parsed value, or the zero value on failure
func (r Result[T]) OrZero() T {
	if r.Err != nil {
		var zero T
		return zero
	}
	return r.Value
}

// Or returns the parsed value, or fallback on failure
func (r Result[T]) Or(fallback T) T {
	if r.Err != nil {
		return fallback
	}
	return r.Value
}

// ExtractObject parses the text between the first '{' and the last '}'
func ExtractObject[T any](text string) Result[T] {
	return ExtractJSON[T](text, '{', '}')
}

// ExtractArray parses the text between the first '[' and the last ']'
func ExtractArray[T any](text string) Result[T] {
	return ExtractJSON[T](text, '[', ']')
}

// ExtractJSON locates the first open and the last closing delimiter and decodes what is between.
// Numbers are kept as json.Number when decoded into interface values.
func ExtractJSON[T any](text string, open, closing byte) Result[T] {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, closing)
	if start == -1 || end == -1 || end < start {
		return Result[T]{Err: ErrNoJSON}
	}

	var v T
	dec := json.NewDecoder(bytes.NewBufferString(text[start : end+1]))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return Result[T]{Err: fmt.Errorf("failed to parse json: %w", err)}
	}
	return Result[T]{Value: v}
}
