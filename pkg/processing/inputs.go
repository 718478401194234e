package processing

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadInputs reads a YAML sequence of step inputs. An empty file yields no
// inputs.
func LoadInputs(filename string) ([]any, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading inputs file: %w", err)
	}

	var inputs []any
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("parsing inputs file: %w", err)
	}

	if inputs == nil {
		inputs = []any{}
	}

	return inputs, nil
}

// ApplyDefaults performs a shallow merge of every map input over defaults.
// Input keys override default keys at the top level. Inputs that are not maps
// are returned unchanged.
func ApplyDefaults(defaults map[string]any, inputs []any) []any {
	if len(defaults) == 0 {
		return inputs
	}

	out := make([]any, len(inputs))
	for i, in := range inputs {
		m, ok := in.(map[string]any)
		if !ok {
			out[i] = in
			continue
		}
		merged := make(map[string]any, len(defaults)+len(m))
		maps.Copy(merged, defaults)
		maps.Copy(merged, m)
		out[i] = merged
	}
	return out
}
