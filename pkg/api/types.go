package api

const (
	OperationRender  = "render"
	OperationRequire = "require"
	OperationMatch   = "match"
)

// RunFile is the YAML format read by the railway command.
type RunFile struct {
	Steps    []StepConfig   `yaml:"steps"`
	Defaults map[string]any `yaml:"defaults"`
	Inputs   string         `yaml:"inputs"`
	Trace    string         `yaml:"trace"`
	Only     string         `yaml:"only"`

	// Set by the loader, not from YAML.
	Dir      string `yaml:"-"`
	FilePath string `yaml:"-"`
}

// StepConfig declares a single step.
type StepConfig struct {
	Name      string `yaml:"name"`
	Operation string `yaml:"operation"`
	Args      []any  `yaml:"args"`
}
