package directive

import "fmt"

// FunctionNotFoundError reports a function-call directive naming a function
// with no registered binding. Unlike every per-field and per-filter problem,
// which render inline, this aborts the whole fill: a function call is assumed
// intentional and its absence indicates a configuration error upstream.
type FunctionNotFoundError struct {
	Name string
}

func (e *FunctionNotFoundError) Error() string {
	return fmt.Sprintf("function %q is not registered", e.Name)
}

// NewFunctionNotFoundError creates a FunctionNotFoundError for the given
// qualified name.
func NewFunctionNotFoundError(name string) error {
	return &FunctionNotFoundError{Name: name}
}
