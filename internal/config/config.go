package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/parser"
	"gopkg.in/yaml.v3"
)

// SourceConfig describes one document collection.
type SourceConfig struct {
	ID     string `yaml:"id"`
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
	Cached bool   `yaml:"cached"`
}

type sourcesFile struct {
	Sources []SourceConfig `yaml:"sources"`
}

type Config struct {
	Port     string
	LogLevel slog.Level

	// Auth
	SearchAPIKey string

	// Sources
	DataDir     string
	SourcesFile string
	Sources     []SourceConfig

	// Loading
	DecodeWorkers int
	WarmCache     bool

	// Request limits
	MaxRequestBytes int64

	// Stats
	StatsWindow time.Duration
}

// DefaultSources returns the four reference collections rooted at dataDir.
func DefaultSources(dataDir string) []SourceConfig {
	return []SourceConfig{
		{ID: "allen", Dir: filepath.Join(dataDir, "allenhandbook"), Format: parser.FormatCenteredTitle},
		{ID: "hering", Dir: filepath.Join(dataDir, "hering"), Format: parser.FormatBracketed},
		{ID: "boericke", Dir: filepath.Join(dataDir, "boericke"), Format: parser.FormatDashedHeader, Cached: true},
		{ID: "kent", Dir: filepath.Join(dataDir, "kent"), Format: parser.FormatColonHeader, Cached: true},
	}
}

// Load reads configuration from the environment. A SOURCES_FILE that cannot
// be read or parsed is an error; without one the default sources are used.
func Load() (Config, error) {
	cfg := Config{
		Port:     envOr("PORT", "3000"),
		LogLevel: envLevel("LOG_LEVEL", slog.LevelInfo),

		SearchAPIKey: os.Getenv("SEARCH_API_KEY"),

		DataDir:     envOr("DATA_DIR", "."),
		SourcesFile: os.Getenv("SOURCES_FILE"),

		DecodeWorkers: envInt("DECODE_WORKERS", 4),
		WarmCache:     envBool("WARM_CACHE", false),

		MaxRequestBytes: envInt64("MAX_REQUEST_BYTES", 64<<10),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),
	}

	if cfg.DecodeWorkers <= 0 {
		cfg.DecodeWorkers = 4
	}
	if cfg.MaxRequestBytes <= 0 {
		cfg.MaxRequestBytes = 64 << 10
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	if cfg.SourcesFile == "" {
		cfg.Sources = DefaultSources(cfg.DataDir)
		return cfg, nil
	}
	sources, err := LoadSources(cfg.SourcesFile, cfg.DataDir)
	if err != nil {
		return cfg, err
	}
	cfg.Sources = sources
	return cfg, nil
}

// LoadSources reads a YAML source table. Relative dirs resolve against dataDir.
func LoadSources(path, dataDir string) ([]SourceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}
	var f sourcesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse sources file %s: %w", path, err)
	}
	for i := range f.Sources {
		if f.Sources[i].Dir != "" && !filepath.IsAbs(f.Sources[i].Dir) {
			f.Sources[i].Dir = filepath.Join(dataDir, f.Sources[i].Dir)
		}
	}
	return f.Sources, nil
}

func (c Config) Validate() error {
	if len(c.Sources) == 0 {
		return errors.New("at least one source is required")
	}
	seen := make(map[string]bool, len(c.Sources))
	for i, s := range c.Sources {
		if s.ID == "" {
			return fmt.Errorf("source %d: id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("source %s: duplicate id", s.ID)
		}
		seen[s.ID] = true
		if s.Dir == "" {
			return fmt.Errorf("source %s: dir is required", s.ID)
		}
		if !parser.IsKnownFormat(s.Format) {
			return fmt.Errorf("source %s: unknown format %q", s.ID, s.Format)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		return fallback
	}
	return l
}
