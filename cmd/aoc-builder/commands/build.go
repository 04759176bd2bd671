package commands

import (
	"aocbuilder/internal/builder"
	"aocbuilder/lib/restyutil"
	"aocbuilder/lib/scrapers/aoc"
	"aocbuilder/lib/telemetry"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	startYear *int
	dumpHttp  *string
)

func init() {
	startYear = buildCmd.Flags().Int("year", 0, "The first year to fetch, overrides start_year of the config.")
	dumpHttp = buildCmd.Flags().String("dump-http", "", "Write every http request and response to this directory.")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build [--year <start year>]",
	Short: "Fetches every available puzzle from the start year up to the current event.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(*configPath, os.LookupEnv)
		if err != nil {
			fatal("failed to read config", err)
		}
		if cmd.Flags().Changed("year") {
			cfg.StartYear = *startYear
		}

		t1 := time.Now()
		summary, err := runBuild(cmd.Context(), cfg, *dumpHttp)
		if err != nil {
			fatal("build failed", err)
		}
		t2 := time.Now()
		slog.Info("build time", "seconds", t2.Sub(t1).Seconds())

		renderSummary(os.Stdout, summary)
	},
}

// runBuild returns instead of exiting so telemetry is always shut down (and
// buffered spans flushed) before the process ends.
func runBuild(ctx context.Context, cfg Config, dumpDir string) (builder.Summary, error) {
	tel, err := telemetry.Setup(ctx, "aoc-builder", cfg.Telemetry)
	if err != nil {
		return builder.Summary{}, fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		err := tel.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to shutdown telemetry", "err", err)
		}
	}()

	opts := aoc.ClientOptions{
		BaseUrl:           cfg.BaseUrl,
		Session:           cfg.Session,
		RequestsPerSecond: cfg.RequestsPerSecond,
		UserAgent:         cfg.UserAgent,
	}
	if dumpDir != "" {
		out, err := restyutil.NewFilesystemOutput(dumpDir)
		if err != nil {
			return builder.Summary{}, fmt.Errorf("prepare http dump directory: %w", err)
		}
		opts.Dump = out
	}

	client, err := aoc.NewClient(opts, telemetry.SlogAPI{})
	if err != nil {
		return builder.Summary{}, fmt.Errorf("initialize client: %w", err)
	}

	b, err := builder.NewBuilder(client, telemetry.SlogAPI{}, builder.Options{
		OutputDir:    cfg.OutputDir,
		TemplatePath: cfg.Template,
		StartYear:    cfg.StartYear,
	})
	if err != nil {
		return builder.Summary{}, fmt.Errorf("initialize builder: %w", err)
	}

	return b.Build(ctx)
}

func formatDays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = fmt.Sprint(d)
	}
	return strings.Join(parts, ", ")
}

func renderSummary(out io.Writer, summary builder.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Year", "Written", "Skipped"})

	for _, year := range summary.Years {
		t.AppendRow(table.Row{year.Year, len(year.Written), formatDays(year.Skipped)})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
