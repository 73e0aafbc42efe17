package directive

import (
	"strings"

	"github.com/asaidimu/go-weft/core"
	"github.com/asaidimu/go-weft/core/format"
)

// Resolve looks up a field reference of the form name[:filter1[:filter2...]]
// against a row and its visibility overrides. The second return value
// reports presence: a reference to a field the row does not carry returns
// ("", false), which callers must treat as "not a known field" rather than
// "known but empty". A field suppressed by the visibility map resolves to
// ("", true) regardless of its underlying value.
//
// Filters apply in textual left-to-right order, each filter's output feeding
// the next filter's input. Resolve is a pure function of its inputs.
func Resolve(reference string, row core.Row, vis core.Visibility) (string, bool) {
	parts := strings.Split(reference, ":")
	field := parts[0]

	raw, ok := row[field]
	if !ok {
		return "", false
	}
	if !vis.Visible(field) {
		return "", true
	}
	if len(parts) == 1 {
		return core.ToString(raw), true
	}

	out := format.Format(raw, parts[1], field)
	for _, name := range parts[2:] {
		out = format.Format(out, name, field)
	}
	return out, true
}
