// Package directive implements the embedded directive language used to fill
// a single {...} slot in a report document. A directive takes one of three
// shapes, tried in a fixed precedence order:
//
//	$name[:filter1[:filter2...]]   variable reference with chained filters
//	?name leftPart!!rightPart      conditional, the else part is optional
//	&qualifiedName(argText)        call of a registered function
//
// Conditional branch text and function argument text may embed [$fieldRef]
// tokens, which are substituted by recursive evaluation against the same row.
// Anything matching no shape resolves to the empty string.
package directive

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/asaidimu/go-weft/core"
	"go.uber.org/zap"
)

var (
	variableRe    = regexp.MustCompile(`^\$([\w:]+)$`)
	conditionalRe = regexp.MustCompile(`(?s)^\?(\w+) (.*)$`)
	functionRe    = regexp.MustCompile(`(?s)^&([\w.]+)\((.*)\)$`)
	embeddedRefRe = regexp.MustCompile(`\[\$([\w:]+)\]`)
)

// elseMarker splits a conditional body into its two branches at the first
// occurrence.
const elseMarker = "!!"

// Evaluator resolves directives against a row of named values. It holds no
// per-evaluation state: Evaluate may be called concurrently as long as the
// registry is no longer being mutated.
type Evaluator struct {
	registry *Registry
	logger   *zap.Logger
}

// NewEvaluator creates an Evaluator backed by the given function registry. A
// nil registry leaves function-call directives unresolvable; a nil logger
// disables logging.
func NewEvaluator(registry *Registry, logger *zap.Logger) *Evaluator {
	if registry == nil {
		registry = NewRegistry(logger)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{
		registry: registry,
		logger:   logger,
	}
}

// Registry returns the function registry consulted by function-call
// directives.
func (e *Evaluator) Registry() *Registry {
	return e.registry
}

// Evaluate resolves one directive to its final text. Unknown fields,
// suppressed fields, unknown filters and unrecognized directive syntax are
// all contained and rendered inline; the only hard failure is a function-call
// directive naming an unregistered function.
func (e *Evaluator) Evaluate(directive string, row core.Row, vis core.Visibility) (string, error) {
	directive = strings.TrimSpace(directive)
	if directive == "" {
		return "", nil
	}

	if m := variableRe.FindStringSubmatch(directive); m != nil {
		value, present := Resolve(m[1], row, vis)
		if !present {
			return "", nil
		}
		return value, nil
	}

	if m := conditionalRe.FindStringSubmatch(directive); m != nil {
		return e.evalConditional(m[1], m[2], row, vis), nil
	}

	if m := functionRe.FindStringSubmatch(directive); m != nil {
		return e.callFunction(m[1], m[2], row, vis)
	}

	e.logger.Debug("Directive matched no known shape", zap.String("directive", directive))
	return "", nil
}

// evalConditional picks a branch of a conditional directive. The body after
// the first space is split on the first else marker; the bare field is
// resolved without filters and the left branch is taken when the result is
// present, non-empty and not the literal "0".
func (e *Evaluator) evalConditional(field, body string, row core.Row, vis core.Visibility) string {
	left, right, hasElse := strings.Cut(body, elseMarker)

	value, present := Resolve(field, row, vis)
	var chosen string
	switch {
	case present && isTruthy(value):
		chosen = left
	case hasElse:
		chosen = right
	default:
		return ""
	}
	return e.substituteRefs(chosen, row, vis)
}

// callFunction resolves embedded references in the argument text, splits it
// on literal commas and invokes the named registered function. The comma
// split has no escaping: an argument whose resolved value contains a comma
// fragments into extra arguments. Callers passing field-derived text into
// functions need to account for that.
func (e *Evaluator) callFunction(name, argText string, row core.Row, vis core.Visibility) (string, error) {
	fn, ok := e.registry.Lookup(name)
	if !ok {
		return "", NewFunctionNotFoundError(name)
	}

	argText = e.substituteRefs(argText, row, vis)
	args := strings.Split(argText, ",")

	out, err := fn(args)
	if err != nil {
		return "", fmt.Errorf("function %q failed: %w", name, err)
	}
	return out, nil
}

// substituteRefs replaces every [$fieldRef] token with the result of
// recursively evaluating the inner variable directive. The replacement is a
// single left-to-right pass; substituted text is not rescanned.
func (e *Evaluator) substituteRefs(text string, row core.Row, vis core.Visibility) string {
	return embeddedRefRe.ReplaceAllStringFunc(text, func(match string) string {
		ref := embeddedRefRe.FindStringSubmatch(match)[1]
		value, _ := e.Evaluate("$"+ref, row, vis)
		return value
	})
}

// isTruthy reports whether a resolved condition value selects the left
// branch: non-empty and not the literal falsy value "0".
func isTruthy(value string) bool {
	return value != "" && value != "0"
}
