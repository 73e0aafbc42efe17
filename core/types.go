// Package core defines the shared data model of go-weft: the row of named
// values a template fill runs against, the per-field visibility overrides,
// and the signature of callable template functions.
package core

// Row is the named-value data supplied for one template fill. Values may be
// strings, numbers, booleans, or nil; the core never mutates a Row.
type Row map[string]any

// Visibility optionally suppresses fields regardless of their presence in a
// Row. A field mapped to false resolves to the empty string. A nil Visibility
// leaves every field visible.
type Visibility map[string]bool

// Visible reports whether the named field may be rendered. A nil map keeps
// every field visible.
func (v Visibility) Visible(field string) bool {
	if v == nil {
		return true
	}
	if shown, ok := v[field]; ok {
		return shown
	}
	return true
}

// Function is a callable exposed to function-call directives. It receives the
// positional string arguments parsed from the directive and returns the text
// to substitute for the span.
type Function func(args []string) (string, error)

// FunctionMap is a set of functions keyed by their fully qualified name
// (namespace + bare name, e.g. "exec.run").
type FunctionMap map[string]Function
