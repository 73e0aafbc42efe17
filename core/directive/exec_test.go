package directive

import (
	"strings"
	"testing"

	"github.com/asaidimu/go-weft/core"
	"github.com/stretchr/testify/assert"
)

func TestRunnerEmptyProgram(t *testing.T) {
	r := NewRunner(nil)
	assert.Equal(t, "", r.Run("", []string{"ignored"}))
}

func TestRunnerCapturesStdout(t *testing.T) {
	r := NewRunner(nil)
	out := r.Run("echo", []string{"hello", "world"})
	assert.Equal(t, "hello world\n", out)
}

func TestRunnerNeverInvokesShell(t *testing.T) {
	r := NewRunner(nil)
	// Shell metacharacters arrive at the program as literal argv entries.
	out := r.Run("echo", []string{"; rm -rf /", "$(hostname)", "a|b"})
	assert.Equal(t, "; rm -rf / $(hostname) a|b\n", out)
}

func TestRunnerNonZeroExitIsNonFatal(t *testing.T) {
	r := NewRunner(nil)
	// ls on a missing path exits non-zero and writes only to stderr.
	out := r.Run("ls", []string{"/no/such/weft/path"})
	assert.Equal(t, "", out)
}

func TestRunnerFunctionAdaptsArgs(t *testing.T) {
	fn := NewRunner(nil).Function()

	out, err := fn([]string{"echo", "x"})
	assert.NoError(t, err)
	assert.Equal(t, "x\n", out)

	out, err = fn(nil)
	assert.NoError(t, err)
	assert.Equal(t, "", out)

	// An empty first argument means no program to run.
	out, err = fn([]string{""})
	assert.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRunFunctionThroughDirective(t *testing.T) {
	registry := NewRegistry(nil)
	assert.NoError(t, RegisterBuiltins(registry, nil))
	e := NewEvaluator(registry, nil)

	out, err := e.Evaluate("&exec.run(echo,[$isbn])", core.Row{"isbn": "0345391802"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "0345391802", strings.TrimSpace(out))
}
