package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"sync"
	"testing"
)

// DayTitle is the title FakeServer gives to a day.
func DayTitle(day int) string {
	return fmt.Sprintf("Test Puzzle %d", day)
}

const (
	IntroText   = "The elves have lost the stars."
	ProblemText = "Count the stars on the tree."
)

// DayPage fabricates a puzzle page shaped like the real site, day 1 carries
// the introduction of the year.
func DayPage(year, day int) string {
	intro := ""
	if day == 1 {
		intro = fmt.Sprintf("<p>%s</p>\n<p>Good luck!</p>\n", IntroText)
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en-us">
<head><title>Day %[2]d - Advent of Code %[1]d</title></head>
<body>
<main>
<article class="day-desc"><h2>--- Day %[2]d: %[3]s ---</h2>%[4]s<p>%[5]s</p>
<p>Year %[1]d, day %[2]d.</p>
</article>
<p>To begin, <a href="%[2]d/input" target="_blank">get your puzzle input</a>.</p>
</main>
</body>
</html>
`, year, day, DayTitle(day), intro, ProblemText)
}

// DayInput fabricates a puzzle input.
func DayInput(year, day int) string {
	return fmt.Sprintf("%d\n%d\n", year, day)
}

type key struct {
	year, day int
	input     bool
}

// FakeServer serves fabricated pages for every (year, day), pages are public
// but inputs require the session cookie, as on the real site.
type FakeServer struct {
	*httptest.Server
	Session string

	mu       sync.Mutex
	statuses map[key]int
	requests []string
}

var dayPath = regexp.MustCompile(`^/(\d+)/day/(\d+)(/input)?$`)

func NewFakeServer(t testing.TB, session string) *FakeServer {
	s := &FakeServer{
		Session:  session,
		statuses: map[key]int{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// SetStatus makes the page of a day answer with status instead of its body.
func (s *FakeServer) SetStatus(year, day, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[key{year: year, day: day}] = status
}

// SetInputStatus makes the input of a day answer with status instead of its body.
func (s *FakeServer) SetInputStatus(year, day, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[key{year: year, day: day, input: true}] = status
}

// Requests returns the paths requested so far, in order.
func (s *FakeServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *FakeServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.URL.Path)
	s.mu.Unlock()

	groups := dayPath.FindStringSubmatch(r.URL.Path)
	if groups == nil {
		http.NotFound(w, r)
		return
	}
	year, _ := strconv.Atoi(groups[1])
	day, _ := strconv.Atoi(groups[2])
	k := key{year: year, day: day, input: groups[3] != ""}

	s.mu.Lock()
	status, overridden := s.statuses[k]
	s.mu.Unlock()
	if overridden {
		w.WriteHeader(status)
		fmt.Fprintln(w, http.StatusText(status))
		return
	}

	if !k.input {
		fmt.Fprint(w, DayPage(year, day))
		return
	}

	cookie, err := r.Cookie("session")
	if err != nil || cookie.Value != s.Session {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintln(w, "Puzzle inputs differ by user.  Please log in to get your puzzle input.")
		return
	}
	fmt.Fprint(w, DayInput(year, day))
}
