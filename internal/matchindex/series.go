package matchindex

import (
	"fmt"
	"iplscore-backend/lib/configutil"
)

// SeriesTable maps a season key to its cricbuzz series id.
type SeriesTable map[string]int

// DefaultSeries is every season known at the time of writing, a series table
// file on disk is merged on top of it.
var DefaultSeries = SeriesTable{
	"IPL2008": 2058,
	"IPL2009": 2059,
	"IPL2010": 2060,
	"IPL2011": 2037,
	"IPL2012": 2115,
	"IPL2013": 2170,
	"IPL2014": 2261,
	"IPL2015": 2330,
	"IPL2016": 2430,
	"IPL2017": 2568,
	"IPL2018": 2676,
	"IPL2019": 2810,
	"IPL2020": 3130,
	"IPL2021": 3472,
	"IPL2022": 4061,
	"IPL2023": 5945,
	"IPL2024": 7607,
	"IPL2025": 9237,
}

// LoadSeriesTable reads the table at `path` on top of DefaultSeries.
func LoadSeriesTable(path string) (SeriesTable, error) {
	defaults := make(SeriesTable, len(DefaultSeries))
	for k, v := range DefaultSeries {
		defaults[k] = v
	}
	table, err := configutil.ReadConfigOr(path, defaults)
	if err != nil {
		return nil, fmt.Errorf("read series table: %w", err)
	}
	return table, nil
}

// Save writes the table to `path`.
func (t SeriesTable) Save(path string) error {
	return configutil.WriteConfig(path, t)
}

// Merge adds or replaces every entry in `discovered`, it returns the keys
// that were added or changed.
func (t SeriesTable) Merge(discovered SeriesTable) []string {
	var changed []string
	for k, v := range discovered {
		old, ok := t[k]
		if ok && old == v {
			continue
		}
		t[k] = v
		changed = append(changed, k)
	}
	sortSeasons(changed)
	return changed
}

// Seasons returns the season keys, oldest first.
func (t SeriesTable) Seasons() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sortSeasons(keys)
	return keys
}

// CurrentSeason returns the newest season in the table.
func (t SeriesTable) CurrentSeason() (string, bool) {
	seasons := t.Seasons()
	if len(seasons) == 0 {
		return "", false
	}
	return seasons[len(seasons)-1], true
}
