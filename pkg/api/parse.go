package api

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunFile reads a run file, sets Dir/FilePath, resolves relative paths
// against Dir and validates it.
func LoadRunFile(filename string) (*RunFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}

	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}
	rf.FilePath = absPath
	rf.Dir = filepath.Dir(absPath)
	rf.Inputs = rf.resolve(rf.Inputs)
	rf.Trace = rf.resolve(rf.Trace)

	if err := rf.Validate(); err != nil {
		return nil, fmt.Errorf("validating run file %s: %w", filename, err)
	}

	return &rf, nil
}

func (rf *RunFile) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rf.Dir, path)
}
