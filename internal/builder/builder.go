package builder

import (
	"aocbuilder/internal/assert"
	"aocbuilder/lib/scrapers/aoc"
	"aocbuilder/lib/telemetry"
	"aocbuilder/lib/timezone"
	"context"
	"fmt"
	"path/filepath"
	"text/template"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	report_builder_year    = "builder.year"
	report_builder_written = "builder.days-written"
	report_builder_skipped = "builder.days-skipped"
)

// DefaultYearRoot prefixes every year folder.
const DefaultYearRoot = "AdventOfCode"

var tracer = otel.Tracer("aocbuilder/builder")

type Options struct {
	// OutputDir holds the year folders, defaults to the working directory.
	OutputDir string
	// YearRoot prefixes year folders, defaults to DefaultYearRoot.
	YearRoot string
	// TemplatePath is the year index template, read once by NewBuilder.
	TemplatePath string
	StartYear    int
	// Now defaults to timezone.Now.
	Now func() time.Time
}

type YearSummary struct {
	Year    int
	Written []int
	Skipped []int
}

type Summary struct {
	Years []YearSummary
}

type Builder struct {
	fetcher  Fetcher
	tel      telemetry.API
	template *template.Template
	opts     Options
}

func NewBuilder(fetcher Fetcher, tel telemetry.API, opts Options) (*Builder, error) {
	assert.NotNil(fetcher)
	assert.NotNil(tel)

	tmpl, err := LoadTemplate(opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if opts.YearRoot == "" {
		opts.YearRoot = DefaultYearRoot
	}
	if opts.Now == nil {
		opts.Now = timezone.Now
	}

	return &Builder{
		fetcher:  fetcher,
		tel:      telemetry.NewScopedAPI("builder", tel),
		template: tmpl,
		opts:     opts,
	}, nil
}

func (b *Builder) YearDir(year int) string {
	return filepath.Join(b.opts.OutputDir, fmt.Sprintf("%s%d", b.opts.YearRoot, year))
}

// Build fetches every day of every year from the start year up to the current
// event year, one request at a time. the first error aborts the run, the
// index of the year in progress is not written then.
func (b *Builder) Build(ctx context.Context) (Summary, error) {
	start, end := YearRange(b.opts.StartYear, b.opts.Now())

	var summary Summary
	var acc Year
	for year := start; year <= end; year++ {
		yearSummary, err := b.buildYear(ctx, year, &acc)
		if err != nil {
			return summary, err
		}
		summary.Years = append(summary.Years, yearSummary)
	}
	return summary, nil
}

func (b *Builder) buildYear(ctx context.Context, year int, acc *Year) (YearSummary, error) {
	ctx, span := tracer.Start(ctx, "builder:buildYear")
	defer span.End()
	span.SetAttributes(attribute.Int("year", year))

	fail := func(err error) (YearSummary, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build year")
		return YearSummary{}, err
	}

	summary := YearSummary{Year: year}
	yearDir := b.YearDir(year)
	b.tel.ReportDebug(report_builder_year, fmt.Sprintf("Creating folder %s...", yearDir))
	err := EnsureDir(yearDir, b.tel)
	if err != nil {
		return fail(err)
	}

	for day := 1; day <= aoc.LastDay; day++ {
		dayDir := filepath.Join(yearDir, DayFolder(day))
		err = EnsureDir(dayDir, b.tel)
		if err != nil {
			return fail(err)
		}

		written, err := ProcessDay(ctx, b.fetcher, b.tel, year, day, dayDir, acc)
		if err != nil {
			return fail(err)
		}
		if written {
			summary.Written = append(summary.Written, day)
		} else {
			summary.Skipped = append(summary.Skipped, day)
		}
	}

	err = WriteYearIndex(filepath.Join(yearDir, "README.md"), b.template, year, acc)
	if err != nil {
		return fail(err)
	}

	b.tel.ReportCount(report_builder_written, int64(len(summary.Written)))
	b.tel.ReportCount(report_builder_skipped, int64(len(summary.Skipped)))
	return summary, nil
}
