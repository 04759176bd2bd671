package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var converter = md.NewConverter("", true, nil)

// ToMarkdown renders an html fragment as markdown. the fragment may be
// unbalanced (a slice cut out of a larger page), the parser closes or drops
// dangling tags.
func ToMarkdown(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBufferString(fragment))
	if err != nil {
		return "", err
	}
	return converter.Convert(doc.Selection), nil
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
}

// UnescapeText decodes entities and collapses whitespace in a short piece of
// inline text, such as a heading captured with a regex.
func UnescapeText(s string) string {
	s = html.UnescapeString(s)
	s = removeNonPrintable(s)
	s = strings.Trim(s, " \t\n")
	return innerWhitespace.ReplaceAllString(s, " ")
}
