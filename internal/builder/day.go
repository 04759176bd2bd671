package builder

import (
	"aocbuilder/lib/scrapers/aoc"
	"aocbuilder/lib/telemetry"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	report_day_unavailable = "day.unavailable"
	report_day_written     = "day.written"
)

// Fetcher is the subset of aoc.Client the builder depends on.
type Fetcher interface {
	PageUrl(year, day int) string
	Fetch(ctx context.Context, link string) (body string, ok bool, err error)
}

func dayReadme(title, problem string) string {
	return fmt.Sprintf("# %s\n\n%s\n", title, strings.TrimSpace(problem))
}

// ProcessDay fetches one day into dayDir and records its title in acc. written
// is false when the puzzle is not available yet, nothing is written then.
func ProcessDay(ctx context.Context, fetcher Fetcher, tel telemetry.API, year, day int, dayDir string, acc *Year) (written bool, err error) {
	pageUrl := fetcher.PageUrl(year, day)
	body, ok, err := fetcher.Fetch(ctx, pageUrl)
	if err != nil {
		return false, err
	}
	if !ok {
		tel.ReportWarning(
			report_day_unavailable,
			fmt.Sprintf("exercise for %d/12/%d is not available", day, year),
		)
		return false, nil
	}

	page, err := aoc.ParsePage(body, day == 1)
	if err != nil {
		return false, fmt.Errorf("day %d of %d: %w", day, year, err)
	}
	acc.AddTitle(page.Title)
	if day == 1 {
		acc.SetIntro(page.Intro)
	}

	err = os.WriteFile(filepath.Join(dayDir, "README.md"), []byte(dayReadme(page.Title, page.Problem)), 0644)
	if err != nil {
		return false, fmt.Errorf("write day readme: %w", err)
	}

	inputUrl := aoc.InputUrl(pageUrl)
	input, ok, err := fetcher.Fetch(ctx, inputUrl)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("%w: %s (is the session still valid?)", aoc.ErrInputUnavailable, inputUrl)
	}
	err = os.WriteFile(filepath.Join(dayDir, "input"), []byte(input), 0644)
	if err != nil {
		return false, fmt.Errorf("write day input: %w", err)
	}

	tel.ReportDebug(report_day_written, year, day, page.Title)
	return true, nil
}
