package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleHTMLIndentedLine(t *testing.T) {
	out := SimpleHTML("first\n    second")
	assert.Equal(t, "first<br>&nbsp;&nbsp;&nbsp;&nbsp;second", out)
}

func TestSimpleHTMLIndentRequiresThreeSpaces(t *testing.T) {
	out := SimpleHTML("first\n  second")
	assert.Equal(t, "first\n  second", out)
}

func TestSimpleHTMLBlankLine(t *testing.T) {
	assert.Equal(t, "para one<br><br>para two", SimpleHTML("para one\n\npara two"))
	assert.Equal(t, "para one<br><br>para two", SimpleHTML("para one\n \t \npara two"))
}

func TestSimpleHTMLInlineStyles(t *testing.T) {
	assert.Equal(t, "an <i>italic</i> word", SimpleHTML("an *italic* word"))
	assert.Equal(t, "a <b>bold</b> word", SimpleHTML("a ^bold^ word"))
	assert.Equal(t, "also <b>bold</b>", SimpleHTML("also #bold#"))
}

func TestSimpleHTMLHashSkipsAngleBrackets(t *testing.T) {
	assert.Equal(t, "#<b>x</b>#", SimpleHTML("#<b>x</b>#"))
}

func TestSimpleHTMLRuleOrder(t *testing.T) {
	// The indent rule runs before the blank-line rule and inline styles see
	// the output of both.
	out := SimpleHTML("a\n\n*b*\n   c")
	assert.Equal(t, "a<br><br><i>b</i><br>&nbsp;&nbsp;&nbsp;&nbsp;c", out)
}
