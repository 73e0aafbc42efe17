// Package format implements the value-formatting pipeline: a fixed table of
// named, pure conversion filters applied to scalar row values. Filters are
// chained by the resolver, each filter's string output feeding the next
// filter's input.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/asaidimu/go-weft/core"
)

// filterFunc is a pure transform from a value (already rendered as a string)
// and the originating field name to formatted text.
type filterFunc func(value, field string) string

var (
	leadingIntRe = regexp.MustCompile(`^[-+]?\d+`)
	titleRe      = regexp.MustCompile(`^(.*), (A|An|The)(;?)$`)
	commaFrontRe = regexp.MustCompile(`^(.*),\s*(.*)$`)
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// filters is the static filter table, built once at initialization. Filters
// with a numeric suffix (truncateN, wordsN) are dispatched by prefix in
// Format instead.
var filters = map[string]filterFunc{
	"upper": func(v, _ string) string { return strings.ToUpper(v) },
	"lower": func(v, _ string) string { return strings.ToLower(v) },
	"int":   formatInt,
	"float": func(v, _ string) string {
		f, _ := core.ToFloat64(v)
		return fmt.Sprintf("%.6f", f)
	},
	"string":      func(v, _ string) string { return v },
	"dollars":     formatDollars,
	"percent":     formatPercent,
	"url":         func(v, _ string) string { return `<a href="` + v + `">` + v + `</a>` },
	"email":       func(v, _ string) string { return `<a href="mailto:` + v + `">` + v + `</a>` },
	"hmail":       formatHiddenEmail,
	"html":        func(v, _ string) string { return SimpleHTML(v) },
	"title":       formatTitle,
	"comma_front": formatCommaFront,
	"proper":      formatProper,
	"month":       formatMonth,
	"nth":         formatNth,
	"alpha":       func(v, _ string) string { return stripNonAlpha(v) },
	"namedalpha":  func(v, field string) string { return field + "_" + stripNonAlpha(v) },
}

// Format applies the named filter to a scalar value. The value is rendered as
// a string first, so chained filters always operate on the previous filter's
// text output. An unrecognized filter name yields a visible inline diagnostic
// rather than an error, keeping a malformed directive non-fatal to the rest
// of the document.
func Format(value any, name, field string) string {
	v := core.ToString(value)
	if fn, ok := filters[name]; ok {
		return fn(v, field)
	}
	if n, ok := numericSuffix(name, "truncate"); ok {
		return truncate(v, n)
	}
	if n, ok := numericSuffix(name, "words"); ok {
		return firstWords(v, n)
	}
	return fmt.Sprintf("  {{{ style %s not supported }}}  ", name)
}

// numericSuffix matches names of the form prefixN and extracts N. A bare
// prefix with no digits does not match.
func numericSuffix(name, prefix string) (int, bool) {
	if !strings.HasPrefix(name, prefix) {
		return 0, false
	}
	rest := name[len(prefix):]
	if rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// formatInt parses the leading numeric portion of the value as an integer,
// rendering 0 when the value is empty or has no leading digits.
func formatInt(v, _ string) string {
	m := leadingIntRe.FindString(v)
	if m == "" {
		return "0"
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return "0"
	}
	return strconv.Itoa(n)
}

func formatDollars(v, _ string) string {
	if v == "" {
		return ""
	}
	f, _ := core.ToFloat64(v)
	return fmt.Sprintf("%.2f", f)
}

// formatPercent multiplies by 100 and renders one decimal place for values
// strictly below 0.2, an integer percentage otherwise.
func formatPercent(v, _ string) string {
	f, _ := core.ToFloat64(v)
	if f < 0.2 {
		return fmt.Sprintf("%.1f%%", f*100)
	}
	return fmt.Sprintf("%d%%", int(f*100))
}

func formatHiddenEmail(v, _ string) string {
	v = strings.ReplaceAll(v, "@", " at ")
	return strings.ReplaceAll(v, ".", " dot ")
}

// formatTitle moves a trailing English article to the front, so
// "Cat in the Hat, The" renders as "The Cat in the Hat".
func formatTitle(v, _ string) string {
	return titleRe.ReplaceAllString(v, "$2 $1$3")
}

// formatCommaFront moves the text after the last comma to the front,
// separated by a space, so "Doe, John" renders as "John Doe".
func formatCommaFront(v, _ string) string {
	return commaFrontRe.ReplaceAllString(v, "$2 $1")
}

// formatProper uppercases the first letter of every word. The remainder of
// each word is left untouched.
func formatProper(v, _ string) string {
	runes := []rune(v)
	boundary := true
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if boundary {
				runes[i] = unicode.ToUpper(r)
			}
			boundary = false
		} else {
			boundary = true
		}
	}
	return string(runes)
}

// formatMonth maps 1-12 to an English month name. Non-numeric or
// out-of-range values pass through unchanged.
func formatMonth(v, _ string) string {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 || n > 12 {
		return v
	}
	return monthNames[n-1]
}

// formatNth appends an ordinal suffix chosen by the value's last digit. The
// check is deliberately naive: 11, 12 and 13 render as "11st", "12nd" and
// "13rd". Callers relying on the historical output depend on this.
func formatNth(v, _ string) string {
	if v == "" {
		return v
	}
	switch v[len(v)-1] {
	case '1':
		return v + "st"
	case '2':
		return v + "nd"
	case '3':
		return v + "rd"
	case '0', '4', '5', '6', '7', '8', '9':
		return v + "th"
	default:
		return v
	}
}

// stripNonAlpha removes everything except ASCII letters and digits.
func stripNonAlpha(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// truncate keeps the first n characters of the value.
func truncate(v string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(v)
	if n >= len(runes) {
		return v
	}
	return string(runes[:n])
}

// firstWords keeps the first n whitespace-delimited words, re-joined with
// single spaces. A non-positive n yields the empty string.
func firstWords(v string, n int) string {
	if n <= 0 {
		return ""
	}
	words := strings.Fields(v)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
