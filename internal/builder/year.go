package builder

import (
	"aocbuilder/lib/scrapers/aoc"
	"bytes"
	"errors"
	"fmt"
	"os"
	"text/template"
	"time"
)

var ErrTemplate = errors.New("builder: year template")

// CurrentEventYear is the last year whose event has started: the current
// year once December is reached, the previous one before that.
func CurrentEventYear(now time.Time) int {
	if now.Month() == time.December {
		return now.Year()
	}
	return now.Year() - 1
}

// YearRange returns the inclusive range of years to build. startYear is clamped
// to the first year of the event, if start > end there is nothing to build.
func YearRange(startYear int, now time.Time) (start, end int) {
	start = startYear
	if start < aoc.FirstYear {
		start = aoc.FirstYear
	}
	return start, CurrentEventYear(now)
}

// Year accumulates what the year index needs while the days of a year are
// processed in order. it is cleared with Reset once the index is written.
type Year struct {
	titles   []string
	intro    string
	hasIntro bool
}

// AddTitle records the title of the next processed day, days must be added
// in ascending order.
func (y *Year) AddTitle(title string) {
	y.titles = append(y.titles, title)
}

// SetIntro captures the introduction of the year, only the first call has any
// effect.
func (y *Year) SetIntro(text string) {
	if y.hasIntro {
		return
	}
	y.intro = text
	y.hasIntro = true
}

func (y *Year) Titles() []string {
	return y.titles
}

func (y *Year) Intro() string {
	return y.intro
}

func (y *Year) Reset() {
	y.titles = y.titles[:0]
	y.intro = ""
	y.hasIntro = false
}

// DayFolder is the name of the folder of a day inside its year folder.
func DayFolder(day int) string {
	return fmt.Sprintf("day%02d", day)
}

// DayList renders one markdown link per title, numbered and linked by its
// 1-based position. a skipped day shifts the titles after it onto earlier
// day numbers.
func DayList(titles []string) string {
	var out bytes.Buffer
	for idx, title := range titles {
		day := idx + 1
		fmt.Fprintf(&out, "- [Day %02d: %s](%s/)\n", day, title, DayFolder(day))
	}
	return out.String()
}

type yearTemplateData struct {
	Year int
	Text string
	Days string
}

// LoadTemplate reads and parses the year index template, it may refer to
// {{.Year}}, {{.Text}} (introduction of the year) and {{.Days}} (day list).
func LoadTemplate(path string) (*template.Template, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	tmpl, err := template.New("year").Parse(string(contents))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrTemplate, path, err)
	}
	return tmpl, nil
}

// WriteYearIndex renders the year index into path, overwriting it, then resets y.
func WriteYearIndex(path string, tmpl *template.Template, year int, y *Year) error {
	var out bytes.Buffer
	err := tmpl.Execute(&out, yearTemplateData{
		Year: year,
		Text: y.Intro(),
		Days: DayList(y.Titles()),
	})
	if err != nil {
		return fmt.Errorf("render year index %d: %w", year, err)
	}
	err = os.WriteFile(path, out.Bytes(), 0644)
	if err != nil {
		return fmt.Errorf("write year index %d: %w", year, err)
	}
	y.Reset()
	return nil
}
