package matchindex

import (
	"errors"
	"fmt"
	"iplscore-backend/lib/textutil"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/antzucaro/matchr"
)

// NotAvailable fills any text field a listing did not have.
const NotAvailable = "NA"

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrUnknownSeason = errors.New("unknown season")
)

// Match is a single fixture of a season as listed by cricbuzz, missing text
// fields are "NA".
type Match struct {
	Venue  string `json:"match_venue"`
	Result string `json:"match_result"`
	Time   string `json:"match_time"`
	Name   string `json:"match_name"`
	Id     string `json:"match_id"`
	No     int    `json:"match_no"`
	Date   string `json:"match_date"`
}

// Index maps a season key (ex. "IPL2025") to its matches ordered by match
// number.
type Index map[string][]Match

// SeasonKey turns a year like "2025" into "IPL2025", keys are passed through.
func SeasonKey(season string) string {
	season = strings.TrimSpace(season)
	if strings.HasPrefix(strings.ToUpper(season), "IPL") {
		return "IPL" + season[3:]
	}
	return "IPL" + season
}

// SeasonYear is the inverse of SeasonKey.
func SeasonYear(key string) (int, bool) {
	if !strings.HasPrefix(key, "IPL") {
		return 0, false
	}
	year, err := strconv.Atoi(key[3:])
	if err != nil {
		return 0, false
	}
	return year, true
}

// Seasons returns the season keys of the index, oldest first.
func (idx Index) Seasons() []string {
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sortSeasons(keys)
	return keys
}

func sortSeasons(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		a, aok := SeasonYear(keys[i])
		b, bok := SeasonYear(keys[j])
		if aok && bok {
			return a < b
		}
		return keys[i] < keys[j]
	})
}

// Merge returns a copy of idx with every season in `other` replacing the
// season of the same key.
func (idx Index) Merge(other Index) Index {
	out := make(Index, len(idx)+len(other))
	for k, v := range idx {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Lookup finds the match with the match number `matchNo` in `season`.
func Lookup(idx Index, season string, matchNo int) (Match, error) {
	matches, ok := idx[SeasonKey(season)]
	if !ok {
		return Match{}, fmt.Errorf("%w: %s", ErrUnknownSeason, season)
	}
	for _, m := range matches {
		if m.No == matchNo {
			return m, nil
		}
	}
	return Match{}, fmt.Errorf("%w: match %d of %s", ErrMatchNotFound, matchNo, season)
}

// SearchResult is a match along with how closely its name matched a query,
// from 0 (nothing alike) to 1 (identical).
type SearchResult struct {
	Season string
	Match  Match
	Score  float64
}

// Search ranks every match in `seasons` (all seasons if empty) by how similar
// its name is to `query` and returns the best `limit` of them. Ties keep
// season then match number order.
func Search(idx Index, query string, seasons []string, limit int) []SearchResult {
	query = textutil.NormalizeName(query)
	if query == "" || limit <= 0 {
		return nil
	}

	keys := idx.Seasons()
	if len(seasons) > 0 {
		wanted := make([]string, len(seasons))
		for i, s := range seasons {
			wanted[i] = SeasonKey(s)
		}
		keys = slices.DeleteFunc(keys, func(k string) bool {
			return !slices.Contains(wanted, k)
		})
	}

	var results []SearchResult
	for _, key := range keys {
		for _, m := range idx[key] {
			name := textutil.NormalizeName(m.Name)
			score := matchr.JaroWinkler(query, name, false)
			if strings.Contains(name, query) {
				score = 1
			}
			results = append(results, SearchResult{Season: key, Match: m, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
