package format

import "regexp"

var (
	indentedLineRe = regexp.MustCompile(`\n {3,}`)
	blankLineRe    = regexp.MustCompile(`\n\s*\n`)
	italicRe       = regexp.MustCompile(`\*([^*]+)\*`)
	boldCaretRe    = regexp.MustCompile(`\^([^^]+)\^`)
	boldHashRe     = regexp.MustCompile(`#([^#<>]+)#`)
)

// SimpleHTML converts a minimal inline markup dialect to HTML. The rules run
// in a fixed order, each as a single global replacement pass over the current
// string, so later rules see the output of earlier ones:
//
//  1. a line starting with three or more spaces becomes a line break followed
//     by four non-breaking spaces
//  2. a blank line becomes a double line break
//  3. *text* becomes italic
//  4. ^text^ becomes bold
//  5. #text# (with no angle brackets inside) becomes bold
//
// The output is a display convenience, not a sanitizer: input text is not
// escaped.
func SimpleHTML(text string) string {
	out := indentedLineRe.ReplaceAllString(text, "<br>&nbsp;&nbsp;&nbsp;&nbsp;")
	out = blankLineRe.ReplaceAllString(out, "<br><br>")
	out = italicRe.ReplaceAllString(out, "<i>$1</i>")
	out = boldCaretRe.ReplaceAllString(out, "<b>$1</b>")
	out = boldHashRe.ReplaceAllString(out, "<b>$1</b>")
	return out
}
