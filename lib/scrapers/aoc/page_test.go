package aoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const firstDayPage = `<main>
<article class="day-desc"><h2>--- Day 1: Test Puzzle ---</h2><p>Santa needs <em>fifty</em> stars.</p>
<p>Good luck!</p>
<p>Find the floor Santa ends up on.</p>
</article>
<p>Your puzzle answer was <code>74</code>.</p>
<article class="day-desc"><h2 id="part2">--- Part Two ---</h2><p>Second part.</p></article>
</main>`

func TestParseFirstDay(t *testing.T) {
	title, err := ExtractTitle(firstDayPage)
	require.NoError(t, err)
	require.Equal(t, "Test Puzzle", title)

	intro, err := ExtractIntro(firstDayPage)
	require.NoError(t, err)
	require.Contains(t, intro, "Santa needs")
	require.Contains(t, intro, "Good luck!")
	require.NotContains(t, intro, "Find the floor")
	require.NotContains(t, intro, "Test Puzzle")

	problem, err := ExtractProblem(firstDayPage, true)
	require.NoError(t, err)
	require.Contains(t, problem, "Find the floor Santa ends up on.")
	require.NotContains(t, problem, "Santa needs")
	require.NotContains(t, problem, "Good luck!")
	require.NotContains(t, problem, "Test Puzzle")
	// stops at the first article
	require.NotContains(t, problem, "Second part")
	require.NotContains(t, problem, "74")
}

func TestParsePage(t *testing.T) {
	page, err := ParsePage(firstDayPage, true)
	require.NoError(t, err)
	require.Equal(t, "Test Puzzle", page.Title)
	require.Contains(t, page.Intro, "Santa needs")
	require.Contains(t, page.Problem, "Find the floor")

	page, err = ParsePage(firstDayPage, false)
	require.NoError(t, err)
	require.Empty(t, page.Intro)
	// without an introduction everything after the heading is the problem
	require.Contains(t, page.Problem, "Santa needs")
	require.Contains(t, page.Problem, "Find the floor")
}

func TestExtractTitleEntities(t *testing.T) {
	title, err := ExtractTitle(`<h2>--- Day 23: Opening the Turing Lock&apos;s ---</h2>`)
	require.NoError(t, err)
	require.Equal(t, "Opening the Turing Lock's", title)
}

func TestMalformedPages(t *testing.T) {
	testCases := []struct {
		name  string
		page  string
		parse func(string) error
	}{
		{
			name:  "no title",
			page:  "<article><h2>Day one</h2><p>text</p></article>",
			parse: func(p string) error { _, err := ExtractTitle(p); return err },
		},
		{
			name:  "no closing phrase",
			page:  "<article><h2>--- Day 1: A ---</h2><p>text</p></article>",
			parse: func(p string) error { _, err := ExtractIntro(p); return err },
		},
		{
			name:  "no subheading",
			page:  "<article><p>text</p></article>",
			parse: func(p string) error { _, err := ExtractProblem(p, false); return err },
		},
		{
			name:  "no article end",
			page:  "<article><h2>--- Day 2: A ---</h2><p>text</p>",
			parse: func(p string) error { _, err := ExtractProblem(p, false); return err },
		},
		{
			name:  "parse with missing intro",
			page:  "<article><h2>--- Day 1: A ---</h2><p>text</p></article>",
			parse: func(p string) error { _, err := ParsePage(p, true); return err },
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			require.ErrorIs(t, test.parse(test.page), ErrMalformedPage)
		})
	}
}
