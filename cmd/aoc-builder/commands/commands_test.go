package commands

import (
	"aocbuilder/internal/builder"
	"aocbuilder/lib/scrapers/aoc"
	"aocbuilder/lib/testutil"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) {
	return "", false
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{ session: "abc", start_year: 2019 }`), 0600))

	cfg, err := loadConfig(path, noEnv)
	require.NoError(t, err)
	require.Equal(t, "abc", cfg.Session)
	require.Equal(t, 2019, cfg.StartYear)
	require.Equal(t, aoc.DefaultBaseUrl, cfg.BaseUrl)
	require.Equal(t, "resource/README-AoC.md", cfg.Template)
	require.Equal(t, float64(1), cfg.RequestsPerSecond)
}

func TestLoadConfigSessionFromEnv(t *testing.T) {
	env := func(name string) (string, bool) {
		if name == sessionEnv {
			return "from-env", true
		}
		return "", false
	}

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "aoc.json5"), env)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Session)
	require.Equal(t, aoc.FirstYear, cfg.StartYear)
}

func TestLoadConfigRequiresSession(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "aoc.json5"), noEnv)
	require.ErrorIs(t, err, aoc.ErrNoSession)
}

func TestRenderSummary(t *testing.T) {
	var out bytes.Buffer
	renderSummary(&out, builder.Summary{
		Years: []builder.YearSummary{
			{Year: 2015, Written: []int{1, 2, 3}},
			{Year: 2016, Written: []int{1}, Skipped: []int{2, 13}},
		},
	})

	rendered := out.String()
	require.Contains(t, rendered, "2015")
	require.Contains(t, rendered, "2, 13")
}

func TestLoadConfigRequestsPerSecond(t *testing.T) {
	testCases := []struct {
		contents string
		expected float64
	}{
		{contents: `{ session: "abc" }`, expected: 1},
		{contents: `{ session: "abc", requests_per_second: 0 }`, expected: 1},
		{contents: `{ session: "abc", requests_per_second: 4 }`, expected: 4},
		{contents: `{ session: "abc", requests_per_second: -1 }`, expected: -1},
	}

	for _, test := range testCases {
		path := filepath.Join(t.TempDir(), "aoc.json5")
		require.NoError(t, os.WriteFile(path, []byte(test.contents), 0600))

		cfg, err := loadConfig(path, noEnv)
		require.NoError(t, err)
		require.Equal(t, test.expected, cfg.RequestsPerSecond, test.contents)
	}
}

func testConfig(t testing.TB, baseUrl string) Config {
	dir := t.TempDir()
	template := filepath.Join(dir, "README-AoC.md")
	require.NoError(t, os.WriteFile(template, []byte("# {{.Year}}\n{{.Days}}"), 0600))

	cfg := defaultConfig
	cfg.Session = "token"
	cfg.BaseUrl = baseUrl
	cfg.Template = template
	cfg.OutputDir = filepath.Join(dir, "out")
	cfg.RequestsPerSecond = -1
	// every year up to the current event would be fetched from 2015
	cfg.StartYear = 3000
	require.NoError(t, os.MkdirAll(cfg.OutputDir, 0755))
	return cfg
}

func TestRunBuildReturnsErrors(t *testing.T) {
	server := testutil.NewFakeServer(t, "token")

	cfg := testConfig(t, server.URL)
	cfg.Template = filepath.Join(t.TempDir(), "missing.md")
	_, err := runBuild(context.Background(), cfg, "")
	require.ErrorIs(t, err, builder.ErrTemplate)

	cfg = testConfig(t, server.URL)
	cfg.Session = ""
	_, err = runBuild(context.Background(), cfg, "")
	require.ErrorIs(t, err, aoc.ErrNoSession)
}

func TestRunBuildEmptyRange(t *testing.T) {
	server := testutil.NewFakeServer(t, "token")
	dump := filepath.Join(t.TempDir(), "http")

	summary, err := runBuild(context.Background(), testConfig(t, server.URL), dump)
	require.NoError(t, err)
	require.Empty(t, summary.Years)
	require.Empty(t, server.Requests())
	require.DirExists(t, dump)
}
