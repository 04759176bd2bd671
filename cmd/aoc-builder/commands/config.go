package commands

import (
	"aocbuilder/lib/configutil"
	"aocbuilder/lib/scrapers/aoc"
	"aocbuilder/lib/telemetry"
	"errors"
	"log/slog"
	"os"
)

// sessionEnv overrides the session of the config file when set.
const sessionEnv = "AOC_SESSION"

type Config struct {
	Session   string `json:"session"`
	StartYear int    `json:"start_year"`
	Template  string `json:"template"`
	OutputDir string `json:"output_dir"`
	BaseUrl   string `json:"base_url"`
	// 0 (or unset) falls back to the default of 1, a negative value disables
	// throttling.
	RequestsPerSecond float64          `json:"requests_per_second"`
	UserAgent         string           `json:"user_agent"`
	Telemetry         telemetry.Config `json:"telemetry"`
}

var defaultConfig = Config{
	StartYear:         aoc.FirstYear,
	Template:          "resource/README-AoC.md",
	OutputDir:         ".",
	BaseUrl:           aoc.DefaultBaseUrl,
	RequestsPerSecond: 1,
}

func loadConfig(path string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg, err := configutil.ReadConfigWithDefaults(path, defaultConfig)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("no config file found, using defaults", "path", path)
		cfg, err = defaultConfig, nil
	}
	if err != nil {
		return Config{}, err
	}

	session, ok := lookupEnv(sessionEnv)
	if ok && session != "" {
		cfg.Session = session
	}
	if cfg.Session == "" {
		return Config{}, aoc.ErrNoSession
	}
	return cfg, nil
}
