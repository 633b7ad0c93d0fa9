package config

import (
	"context"
	"fmt"
	"iplscore-backend/internal/matchindex"
	"iplscore-backend/lib/configutil"
	"iplscore-backend/lib/scrapers/cricbuzz"
	"time"
)

const (
	BackendJson   = "json"
	BackendSqlite = "sqlite"
)

type MatchIndexConfig struct {
	// Backend is either "json" or "sqlite".
	Backend string `json:"backend"`
	// Path is a file path for json, a file path or libsql url for sqlite.
	Path string `json:"path"`
}

type CricbuzzConfig struct {
	BaseUrl          string `json:"base_url"`
	TimeoutSeconds   int    `json:"timeout_seconds"`
	BypassCloudflare bool   `json:"bypass_cloudflare"`
	// DumpDir enables writing every request/response pair to files.
	DumpDir string `json:"dump_dir"`
}

type Config struct {
	Port        int              `json:"port"`
	Cricbuzz    CricbuzzConfig   `json:"cricbuzz"`
	MatchIndex  MatchIndexConfig `json:"match_index"`
	SeriesTable string           `json:"series_table"`
	// CurrentSeason overrides the season ipl_match_no is resolved against,
	// it defaults to the newest season of the series table.
	CurrentSeason string   `json:"current_season"`
	CORSOrigins   []string `json:"cors_origins"`
}

func Default() Config {
	return Config{
		Port: 5000,
		Cricbuzz: CricbuzzConfig{
			BaseUrl:        cricbuzz.DefaultBaseUrl,
			TimeoutSeconds: 30,
		},
		MatchIndex: MatchIndexConfig{
			Backend: BackendJson,
			Path:    "match_ids.json",
		},
		SeriesTable: "ipl_series.json",
		CORSOrigins: []string{"*"},
	}
}

// Load reads the config at `path` (and its .local override) on top of the
// defaults, a missing file is not an error.
func Load(path string) (Config, error) {
	cfg, err := configutil.ReadConfigOr(path, Default())
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	err = cfg.validate()
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.MatchIndex.Backend {
	case BackendJson, BackendSqlite:
	default:
		return fmt.Errorf("unknown match index backend %q", c.MatchIndex.Backend)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// OpenStore opens the configured match index store, the returned close
// function must be called once the store is no longer used.
func (c Config) OpenStore(ctx context.Context) (matchindex.Store, func() error, error) {
	if c.MatchIndex.Backend != BackendSqlite {
		return matchindex.NewFileStore(c.MatchIndex.Path), func() error { return nil }, nil
	}

	database, err := matchindex.OpenDatabase(c.MatchIndex.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open match index database: %w", err)
	}
	store, err := matchindex.NewSQLStore(ctx, database)
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	return store, database.Close, nil
}

func (c Config) NewClient() (*cricbuzz.Client, error) {
	return cricbuzz.NewClient(cricbuzz.ClientOptions{
		BaseUrl:          c.Cricbuzz.BaseUrl,
		Timeout:          time.Duration(c.Cricbuzz.TimeoutSeconds) * time.Second,
		DumpDir:          c.Cricbuzz.DumpDir,
		BypassCloudflare: c.Cricbuzz.BypassCloudflare,
	})
}

// Season resolves the current season against the series table.
func (c Config) Season(series matchindex.SeriesTable) string {
	if c.CurrentSeason != "" {
		return matchindex.SeasonKey(c.CurrentSeason)
	}
	current, ok := series.CurrentSeason()
	if !ok {
		return ""
	}
	return current
}
