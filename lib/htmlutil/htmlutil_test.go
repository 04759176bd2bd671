package htmlutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToMarkdown(t *testing.T) {
	testCases := []struct {
		fragment string
		contains []string
	}{
		{
			fragment: "<p>The elves need <code>50</code> stars.</p>",
			contains: []string{"The elves need `50` stars."},
		},
		{
			fragment: `<p>Read <a href="/2015/about">about</a> first.</p>`,
			contains: []string{"[about](/2015/about)"},
		},
		{
			// unbalanced slice, as cut from the middle of a page
			fragment: "\n<p>first</p><p>second</p></article>",
			contains: []string{"first", "second"},
		},
	}

	for _, test := range testCases {
		out, err := ToMarkdown(test.fragment)
		require.NoError(t, err)
		require.NotContains(t, out, "<")
		for _, c := range test.contains {
			require.Contains(t, out, c)
		}
	}
}

func TestUnescapeText(t *testing.T) {
	require.Equal(t, "Doesn't He Have Intern-Elves For This?", UnescapeText("Doesn&apos;t He Have Intern-Elves For This?"))
	require.Equal(t, "I Was Told There Would Be No Math", UnescapeText("  I Was Told  There Would Be No Math\n"))
}
