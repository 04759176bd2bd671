package aoc

import (
	"aocbuilder/lib/htmlutil"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Puzzle pages are cut apart with fixed anchors instead of a parse tree, the
// markup of the site has not changed shape since 2015. Every anchor used is
// declared here.
var (
	// "--- Day 7: Some Assembly Required ---", only the title is captured.
	titlePattern = regexp.MustCompile(`--- Day \d+: (.*) ---`)
	// closing phrase of the introduction on the first day of a year,
	// the boundary includes the rest of its line.
	introClosePattern = regexp.MustCompile(`Good luck!.*\n`)
)

const (
	subheadingClose = "</h2>"
	articleClose    = "</article>"
)

var ErrMalformedPage = errors.New("aoc: malformed page")

func malformed(anchor string) error {
	return fmt.Errorf("%w: could not find %q", ErrMalformedPage, anchor)
}

type Page struct {
	Title string
	// Intro is only set for pages parsed with an introduction.
	Intro   string
	Problem string
}

// ExtractTitle returns the puzzle title from the "--- Day N: <title> ---" heading.
func ExtractTitle(page string) (string, error) {
	groups := titlePattern.FindStringSubmatch(page)
	if len(groups) < 2 {
		return "", malformed(titlePattern.String())
	}
	return htmlutil.UnescapeText(groups[1]), nil
}

// problemStart is the offset right after the first closing subheading.
func problemStart(page string) (int, error) {
	idx := strings.Index(page, subheadingClose)
	if idx < 0 {
		return 0, malformed(subheadingClose)
	}
	return idx + len(subheadingClose), nil
}

// introBounds locates [begin, end) of the introduction, from the first closing
// subheading to the end of the line holding the closing phrase.
func introBounds(page string) (int, int, error) {
	begin, err := problemStart(page)
	if err != nil {
		return 0, 0, err
	}
	loc := introClosePattern.FindStringIndex(page[begin:])
	if loc == nil {
		return 0, 0, malformed(introClosePattern.String())
	}
	return begin, begin + loc[1], nil
}

// problemBounds locates [begin, end) of the problem statement, starting at
// `begin` and running through the first closing article tag.
func problemBounds(page string, begin int) (int, int, error) {
	idx := strings.Index(page[begin:], articleClose)
	if idx < 0 {
		return 0, 0, malformed(articleClose)
	}
	return begin, begin + idx + len(articleClose), nil
}

func convert(fragment string) (string, error) {
	out, err := htmlutil.ToMarkdown(fragment)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return out, nil
}

// ExtractIntro returns the introduction of the year, only the first day of a
// year carries one.
func ExtractIntro(page string) (string, error) {
	begin, end, err := introBounds(page)
	if err != nil {
		return "", err
	}
	return convert(page[begin:end])
}

// ExtractProblem returns the problem statement. when afterIntro is set the
// statement starts where the introduction ends, otherwise right after the
// title heading.
func ExtractProblem(page string, afterIntro bool) (string, error) {
	begin, err := problemStart(page)
	if err != nil {
		return "", err
	}
	if afterIntro {
		_, begin, err = introBounds(page)
		if err != nil {
			return "", err
		}
	}
	begin, end, err := problemBounds(page, begin)
	if err != nil {
		return "", err
	}
	return convert(page[begin:end])
}

// ParsePage extracts everything a day needs from a puzzle page.
func ParsePage(page string, withIntro bool) (Page, error) {
	var out Page
	var err error

	out.Title, err = ExtractTitle(page)
	if err != nil {
		return Page{}, err
	}
	if withIntro {
		out.Intro, err = ExtractIntro(page)
		if err != nil {
			return Page{}, err
		}
	}
	out.Problem, err = ExtractProblem(page, withIntro)
	if err != nil {
		return Page{}, err
	}
	return out, nil
}
