package observers

// Funcs is an observer built from optional callbacks. Nil fields are skipped.
type Funcs struct {
	Called    func(name string, input any, args ...any)
	Succeeded func(name string, value any)
	Failed    func(name string, input, value any)
}

func (f Funcs) StepCalled(name string, input any, args ...any) {
	if f.Called != nil {
		f.Called(name, input, args...)
	}
}

func (f Funcs) StepSucceeded(name string, value any) {
	if f.Succeeded != nil {
		f.Succeeded(name, value)
	}
}

func (f Funcs) StepFailed(name string, input, value any) {
	if f.Failed != nil {
		f.Failed(name, input, value)
	}
}
