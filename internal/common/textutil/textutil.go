// Package textutil holds the small text and number helpers shared by the calculators and the
// listing extractors.
package textutil

import (
	"math"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const ellipsis = "..."

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML returns the text content of an HTML fragment with whitespace runs collapsed to a
// single space. Entities are decoded.
func StripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return CollapseSpace(strings.ReplaceAll(tagPattern.ReplaceAllString(fragment, ""), "&nbsp;", " "))
	}
	return CollapseSpace(doc.Text())
}

// CollapseSpace trims s and replaces every run of Unicode whitespace with one space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateWithEllipsis keeps the first max runes of s and always appends "...".
func TruncateWithEllipsis(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		r = r[:max]
	}
	return string(r) + ellipsis
}

// Round rounds half away from zero and converts to int.
func Round(v float64) int {
	return int(math.Round(v))
}

// ContainsAny reports whether s contains any of the keywords.
func ContainsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
