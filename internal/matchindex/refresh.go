package matchindex

import (
	"context"
	"errors"
	"fmt"
	"iplscore-backend/lib/telemetry"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// AllSeasons refreshes every season in the series table.
const AllSeasons = "all"

type SeasonFetcher interface {
	FetchSeasonMatches(ctx context.Context, season string, seriesId int) ([]Match, error)
}

type SeriesDiscoverer interface {
	DiscoverSeries(ctx context.Context) (map[string]int, error)
}

type Refresher struct {
	Fetcher SeasonFetcher
	Store   Store
	Series  SeriesTable
	// Pause is the wait between two seasons of a full refresh.
	Pause time.Duration
	Tel   telemetry.API
}

func NewRefresher(fetcher SeasonFetcher, store Store, series SeriesTable, tel telemetry.API) Refresher {
	if tel == nil {
		tel = telemetry.NoopAPI{}
	}
	return Refresher{
		Fetcher: fetcher,
		Store:   store,
		Series:  series,
		Pause:   time.Second,
		Tel:     telemetry.NewScopedAPI("matchindex", tel),
	}
}

func normalizeSeason(season string) string {
	season = strings.TrimSpace(season)
	if season == "" {
		return AllSeasons
	}
	return season
}

// Refresh refetches `season` ("all" or a year like "2025") and saves it. A
// full refresh replaces the stored index while a single season is merged into
// it. Seasons that fail to fetch are stored as empty and their errors are
// joined into the returned error, the returned index is always saved.
func (r Refresher) Refresh(ctx context.Context, season string) (Index, error) {
	season = normalizeSeason(season)
	ctx, span := tracer.Start(ctx, "Refresh")
	defer span.End()
	span.SetAttributes(attribute.String("season", season))

	refreshed := Index{}
	var fetchErrs []error

	if season == AllSeasons {
		for i, key := range r.Series.Seasons() {
			if i > 0 {
				err := sleep(ctx, r.Pause)
				if err != nil {
					return nil, err
				}
			}
			matches, err := r.fetch(ctx, key, r.Series[key])
			if err != nil {
				fetchErrs = append(fetchErrs, err)
			}
			refreshed[key] = matches
		}
	} else {
		key := SeasonKey(season)
		if _, err := strconv.Atoi(strings.TrimPrefix(key, "IPL")); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSeason, season)
		}
		seriesId, ok := r.Series[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSeason, season)
		}
		matches, err := r.fetch(ctx, key, seriesId)
		if err != nil {
			fetchErrs = append(fetchErrs, err)
		}
		refreshed[key] = matches

		stored, err := r.Store.Load(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to load stored index")
			return nil, fmt.Errorf("load match index: %w", err)
		}
		refreshed = stored.Merge(refreshed)
	}

	err := r.Store.Save(ctx, refreshed)
	if err != nil {
		r.Tel.ReportBroken("save", err.Error())
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to save index")
		return nil, fmt.Errorf("save match index: %w", err)
	}

	return refreshed, errors.Join(fetchErrs...)
}

func (r Refresher) fetch(ctx context.Context, key string, seriesId int) ([]Match, error) {
	matches, err := r.Fetcher.FetchSeasonMatches(ctx, key, seriesId)
	if err != nil {
		r.Tel.ReportWarning("fetch-season", key, err.Error())
		return []Match{}, fmt.Errorf("fetch %s: %w", key, err)
	}
	if matches == nil {
		matches = []Match{}
	}
	r.Tel.ReportCount("season-matches:"+key, int64(len(matches)))
	return matches, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// UpdateSeries discovers the series currently listed by cricbuzz, merges them
// into the table stored at `path` and writes it back. It returns the season
// keys that were added or changed.
func UpdateSeries(ctx context.Context, discoverer SeriesDiscoverer, path string) (SeriesTable, []string, error) {
	ctx, span := tracer.Start(ctx, "UpdateSeries")
	defer span.End()

	discovered, err := discoverer.DiscoverSeries(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to discover series")
		return nil, nil, err
	}

	table, err := LoadSeriesTable(path)
	if err != nil {
		return nil, nil, err
	}
	changed := table.Merge(discovered)

	err = table.Save(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to save series table")
		return nil, nil, err
	}
	return table, changed, nil
}
