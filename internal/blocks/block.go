// Package blocks defines the pluggable automation block abstraction.
//
// A block wraps one vendor operation behind a declared input/output schema so
// workflows can compose them without knowing the vendor API. Runs never fail
// with a Go error: any failure is surfaced as a single human-readable string
// on the "error" output, which is what downstream workflow nodes branch on.
package blocks

import (
	"context"
	"strconv"
)

// Input is the raw input payload for one run. Credential fields are injected
// by the runner and stripped again before anything is persisted.
type Input map[string]any

// String returns a string input, tolerating absent keys.
func (in Input) String(key string) string {
	s, _ := in[key].(string)
	return s
}

// Int returns an integer input, accepting JSON numbers and numeric strings.
func (in Input) Int(key string, def int) int {
	switch v := in[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// StringSlice returns a list input; single strings are treated as one-element lists.
func (in Input) StringSlice(key string) []string {
	switch v := in[key].(type) {
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Pair is one emitted output.
type Pair struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Output is the ordered list of outputs emitted by a run.
type Output []Pair

// Get returns the value for a key and whether it was emitted.
func (o Output) Get(key string) (any, bool) {
	for _, p := range o {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Err returns the "error" output, or "" for a successful run.
func (o Output) Err() string {
	if v, ok := o.Get("error"); ok {
		s, _ := v.(string)
		return s
	}
	return ""
}

// Map flattens the outputs for persistence. Later keys win, which cannot
// happen for well-formed blocks (keys are emitted at most once).
func (o Output) Map() map[string]any {
	m := make(map[string]any, len(o))
	for _, p := range o {
		m[p.Key] = p.Value
	}
	return m
}

// Fail builds the single-output error result every block uses.
func Fail(msg string) Output {
	return Output{{Key: "error", Value: msg}}
}

// Field describes one input or output field of a block.
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // string | bool | int | list[string] | object
	Description string `json:"description"`
	Required    bool   `json:"required,omitempty"`
	Default     any    `json:"default,omitempty"`
	Advanced    bool   `json:"advanced,omitempty"`
	Secret      bool   `json:"secret,omitempty"`
}

// Info is the static metadata of a block.
type Info struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Inputs      []Field `json:"inputs"`
	Outputs     []Field `json:"outputs"`
}

// Block is one pluggable vendor operation.
type Block interface {
	Info() Info
	Run(ctx context.Context, in Input) Output
}
