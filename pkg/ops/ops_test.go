package ops

import (
	"errors"
	"strings"
	"testing"

	"github.com/systemstart/railway/pkg/api"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		tmpl    string
		want    string
		wantErr error
	}{
		{"sprig", map[string]any{"name": "bob"}, "hello {{ .name | upper }}", "hello BOB", nil},
		{"trimmed", map[string]any{"name": "bob"}, "  {{ .name }}\n", "bob", nil},
		{"scalar input", "x", "{{ . | repeat 3 }}", "xxx", nil},
		{"empty output", map[string]any{"name": ""}, "{{ .name }}", "", ErrEmptyOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.input, tt.tmpl)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Render() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	if _, err := Render(map[string]any{}, "{{ .missing }}"); err == nil || !strings.Contains(err.Error(), "executing template") {
		t.Errorf("expected missing key error, got %v", err)
	}
	if _, err := Render(nil, "{{ .broken"); err == nil || !strings.Contains(err.Error(), "parsing template") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestRequire(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantErr error
	}{
		{"present", map[string]any{"name": "bob"}, nil},
		{"number", map[string]any{"name": 0}, nil},
		{"absent", map[string]any{}, ErrMissingKey},
		{"empty", map[string]any{"name": ""}, ErrMissingKey},
		{"nil", map[string]any{"name": nil}, ErrMissingKey},
		{"not a map", "bob", ErrNotAMap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Require(tt.input, "name")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Require() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got == nil {
				t.Error("expected input to be passed through")
			}
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		pattern string
		wantErr error
	}{
		{"match", map[string]any{"email": "bob@example.com"}, "*@example.com", nil},
		{"alternatives", map[string]any{"email": "bob@example.org"}, "*@example.{com,org}", nil},
		{"no match", map[string]any{"email": "bob@other.com"}, "*@example.com", ErrNoMatch},
		{"missing", map[string]any{}, "*", ErrMissingKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Match(tt.input, "email", tt.pattern)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Match() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewStep(t *testing.T) {
	tests := []struct {
		name      string
		cfg       api.StepConfig
		wantArity int
		wantErr   bool
	}{
		{
			name:      "render",
			cfg:       api.StepConfig{Name: "greet", Operation: api.OperationRender, Args: []any{"hi {{ .name }}"}},
			wantArity: 2,
		},
		{
			name:      "require",
			cfg:       api.StepConfig{Name: "named", Operation: api.OperationRequire, Args: []any{"name"}},
			wantArity: 2,
		},
		{
			name:      "match",
			cfg:       api.StepConfig{Name: "mail", Operation: api.OperationMatch, Args: []any{"email", "*@x"}},
			wantArity: 3,
		},
		{
			name:    "missing args",
			cfg:     api.StepConfig{Name: "mail", Operation: api.OperationMatch, Args: []any{"email"}},
			wantErr: true,
		},
		{
			name:    "unknown operation",
			cfg:     api.StepConfig{Name: "bad", Operation: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStep(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewStep() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if s.Name() != tt.cfg.Name {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.cfg.Name)
			}
			if s.OperationName() != tt.cfg.Operation {
				t.Errorf("OperationName() = %q, want %q", s.OperationName(), tt.cfg.Operation)
			}
			if arity, _ := s.Arity(); arity != tt.wantArity {
				t.Errorf("Arity() = %d, want %d", arity, tt.wantArity)
			}
		})
	}
}

func TestNewStep_Call(t *testing.T) {
	s, err := NewStep(api.StepConfig{Name: "greet", Operation: api.OperationRender, Args: []any{"hi {{ .name }}"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r := s.Call(map[string]any{"name": "bob"}); r.Value() != "hi bob" {
		t.Errorf("Call() = %v, want success hi bob", r)
	}

	r := s.Call(map[string]any{})
	if !r.IsFailure() {
		t.Fatalf("expected failure, got %v", r)
	}
	if r.Failure().StepName != "greet" {
		t.Errorf("StepName = %q, want greet", r.Failure().StepName)
	}
}
