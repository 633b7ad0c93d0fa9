package config

import (
	"context"
	"iplscore-backend/internal/matchindex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json5"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{
		port: 8080,
		match_index: { backend: "sqlite", path: "index.db" },
	}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
		current_season: "2024",
	}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, BackendSqlite, cfg.MatchIndex.Backend)
	require.Equal(t, "index.db", cfg.MatchIndex.Path)
	require.Equal(t, "2024", cfg.CurrentSeason)
	// untouched fields keep their defaults
	require.Equal(t, 30, cfg.Cricbuzz.TimeoutSeconds)
	require.Equal(t, "ipl_series.json", cfg.SeriesTable)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{ match_index: { backend: "redis" } }`), 0644))

	_, err := Load(path)
	require.ErrorContains(t, err, "redis")
}

func TestSeason(t *testing.T) {
	series := matchindex.SeriesTable{"IPL2024": 7607, "IPL2025": 9237}

	require.Equal(t, "IPL2025", Default().Season(series))

	cfg := Default()
	cfg.CurrentSeason = "2024"
	require.Equal(t, "IPL2024", cfg.Season(series))

	require.Equal(t, "", Default().Season(matchindex.SeriesTable{}))
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cfg := Default()
	cfg.MatchIndex.Path = filepath.Join(dir, "match_ids.json")
	store, closeStore, err := cfg.OpenStore(ctx)
	require.NoError(t, err)
	require.IsType(t, matchindex.FileStore{}, store)
	require.NoError(t, closeStore())

	cfg.MatchIndex = MatchIndexConfig{Backend: BackendSqlite, Path: filepath.Join(dir, "index.db")}
	store, closeStore, err = cfg.OpenStore(ctx)
	require.NoError(t, err)
	defer closeStore()
	require.IsType(t, matchindex.SQLStore{}, store)

	require.NoError(t, store.Save(ctx, matchindex.Index{"IPL2025": {{Id: "1", No: 1}}}))
	idx, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, idx["IPL2025"], 1)
}

func TestNewClient(t *testing.T) {
	client, err := Default().NewClient()
	require.NoError(t, err)
	require.Equal(t, "www.cricbuzz.com", client.BaseUrl.Hostname())
}
