package directive

import (
	"testing"

	"github.com/asaidimu/go-weft/core"
	"github.com/stretchr/testify/assert"
)

func TestResolvePlainField(t *testing.T) {
	row := core.Row{"name": "Ada", "count": 3}

	value, present := Resolve("name", row, nil)
	assert.True(t, present)
	assert.Equal(t, "Ada", value)

	value, present = Resolve("count", row, nil)
	assert.True(t, present)
	assert.Equal(t, "3", value)
}

func TestResolveAbsentField(t *testing.T) {
	value, present := Resolve("missing", core.Row{"name": "Ada"}, nil)
	assert.False(t, present)
	assert.Equal(t, "", value)
}

func TestResolveAbsentIsDistinctFromEmpty(t *testing.T) {
	value, present := Resolve("name", core.Row{"name": ""}, nil)
	assert.True(t, present)
	assert.Equal(t, "", value)
}

func TestResolveSuppressedField(t *testing.T) {
	row := core.Row{"salary": 90000}
	vis := core.Visibility{"salary": false}

	value, present := Resolve("salary", row, vis)
	assert.True(t, present)
	assert.Equal(t, "", value)

	// Suppression wins over filters too.
	value, present = Resolve("salary:dollars", row, vis)
	assert.True(t, present)
	assert.Equal(t, "", value)
}

func TestResolveVisibilityDefaultsToVisible(t *testing.T) {
	row := core.Row{"a": "x", "b": "y"}
	vis := core.Visibility{"a": false}

	value, _ := Resolve("b", row, vis)
	assert.Equal(t, "y", value)
}

func TestResolveSingleFilter(t *testing.T) {
	value, present := Resolve("name:upper", core.Row{"name": "Ada"}, nil)
	assert.True(t, present)
	assert.Equal(t, "ADA", value)
}

func TestResolveFilterChainOrder(t *testing.T) {
	// Left to right: alpha strips the dash first, then truncate keeps two
	// characters of the stripped text.
	value, _ := Resolve("code:alpha:truncate2", core.Row{"code": "a-bc"}, nil)
	assert.Equal(t, "ab", value)

	// Reversed order truncates before stripping.
	value, _ = Resolve("code:truncate2:alpha", core.Row{"code": "a-bc"}, nil)
	assert.Equal(t, "a", value)
}

func TestResolveUnknownFilterIsInline(t *testing.T) {
	value, present := Resolve("name:bogus", core.Row{"name": "Ada"}, nil)
	assert.True(t, present)
	assert.Contains(t, value, "not supported")
}
