package directive

import (
	"bytes"
	"os/exec"

	"github.com/asaidimu/go-weft/core"
	"go.uber.org/zap"
)

// RunFunctionName is the qualified name the process invoker is registered
// under by RegisterBuiltins. In a directive the first argument is the program
// path and the remaining arguments its argv:
//
//	{&exec.run(/usr/bin/lookup,[$isbn])}
const RunFunctionName = "exec.run"

// Runner executes external programs with an explicit argument vector. No part
// of the command passes through a shell, so shell metacharacters in any
// argument, including ones derived from field values, have no special
// meaning.
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a Runner. A nil logger disables logging.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Run executes program with args as its literal argument vector and returns
// everything it wrote to standard output. Standard error is not captured. An
// empty program returns the empty string without attempting execution. A
// non-zero exit is warned but non-fatal: whatever output was captured is
// still returned, so a failing helper program does not take the surrounding
// document down with it. Run blocks until the program exits; callers needing
// bounded latency must impose their own timeout.
func (r *Runner) Run(program string, args []string) string {
	if program == "" {
		return ""
	}

	cmd := exec.Command(program, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		r.logger.Warn("External program failed",
			zap.String("program", program),
			zap.Strings("args", args),
			zap.Error(err))
	}
	return stdout.String()
}

// Function adapts the Runner to the directive function signature: the first
// positional argument is the program path, the rest its argv.
func (r *Runner) Function() core.Function {
	return func(args []string) (string, error) {
		if len(args) == 0 {
			return "", nil
		}
		return r.Run(args[0], args[1:]), nil
	}
}

// RegisterBuiltins adds the built-in functions to a registry. Currently that
// is only the process invoker under RunFunctionName.
func RegisterBuiltins(registry *Registry, logger *zap.Logger) error {
	return registry.Register(RunFunctionName, NewRunner(logger).Function())
}
