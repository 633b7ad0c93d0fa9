package matchindex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSeriesTableDefaults(t *testing.T) {
	table, err := LoadSeriesTable(filepath.Join(t.TempDir(), "ipl_series.json"))
	require.NoError(t, err)
	require.Equal(t, DefaultSeries, table)

	current, ok := table.CurrentSeason()
	require.True(t, ok)
	require.Equal(t, "IPL2025", current)

	// defaults are copied
	table["IPL2008"] = 1
	require.Equal(t, 2058, DefaultSeries["IPL2008"])
}

func TestLoadSeriesTableOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ipl_series.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		// next season
		"IPL2026": 10500,
		"IPL2025": 9238,
	}`), 0644))

	table, err := LoadSeriesTable(path)
	require.NoError(t, err)
	require.Equal(t, 10500, table["IPL2026"])
	require.Equal(t, 9238, table["IPL2025"])
	require.Equal(t, 2058, table["IPL2008"])

	current, _ := table.CurrentSeason()
	require.Equal(t, "IPL2026", current)
}

func TestSeriesTableMerge(t *testing.T) {
	table := SeriesTable{"IPL2024": 7607, "IPL2025": 9237}
	changed := table.Merge(SeriesTable{"IPL2025": 9237, "IPL2026": 10500, "IPL2023": 5945})

	require.Equal(t, []string{"IPL2023", "IPL2026"}, changed)
	require.Equal(t, []string{"IPL2023", "IPL2024", "IPL2025", "IPL2026"}, table.Seasons())
}

func TestSeriesTableSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ipl_series.json")
	require.NoError(t, SeriesTable{"IPL2030": 1}.Save(path))

	table, err := LoadSeriesTable(path)
	require.NoError(t, err)
	require.Equal(t, 1, table["IPL2030"])
	require.Len(t, table, len(DefaultSeries)+1)
}

func TestCurrentSeasonEmpty(t *testing.T) {
	_, ok := SeriesTable{}.CurrentSeason()
	require.False(t, ok)
}
