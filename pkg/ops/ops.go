// Package ops holds the operations the railway command can declare in a run
// file. Each one takes the step input first, followed by the configured args.
package ops

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/bmatcuk/doublestar/v4"
)

var (
	ErrEmptyOutput = errors.New("template rendered empty output")
	ErrMissingKey  = errors.New("missing key")
	ErrNoMatch     = errors.New("value does not match pattern")
	ErrNotAMap     = errors.New("input is not a map")
)

// Render executes tmpl with sprig functions against input and returns the
// trimmed output. Unknown map keys are an error.
func Render(input any, tmpl string) (string, error) {
	t, err := template.New("render").Funcs(sprig.FuncMap()).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, input); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	out := strings.TrimSpace(buf.String())
	if out == "" {
		return "", ErrEmptyOutput
	}
	return out, nil
}

// Require passes input through when it holds a non-empty value under key.
func Require(input any, key string) (any, error) {
	if _, err := lookup(input, key); err != nil {
		return nil, err
	}
	return input, nil
}

// Match passes input through when the string under key matches the
// doublestar pattern.
func Match(input any, key, pattern string) (any, error) {
	v, err := lookup(input, key)
	if err != nil {
		return nil, err
	}

	s := fmt.Sprint(v)
	ok, err := doublestar.Match(pattern, s)
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", pattern, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s=%q, pattern %q", ErrNoMatch, key, s, pattern)
	}
	return input, nil
}

func lookup(input any, key string) (any, error) {
	m, ok := input.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotAMap, input)
	}
	v, ok := m[key]
	if !ok || v == nil || v == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	return v, nil
}
