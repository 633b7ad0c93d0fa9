package db

import (
	"context"
)

const getAllMatches = `select season, match_no, match_id, match_name, match_venue, match_result, match_time, match_date
from ipl_match
order by season, match_no`

func (q *Queries) GetAllMatches(ctx context.Context) ([]IplMatch, error) {
	rows, err := q.db.QueryContext(ctx, getAllMatches)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []IplMatch
	for rows.Next() {
		var i IplMatch
		if err := rows.Scan(
			&i.Season,
			&i.MatchNo,
			&i.MatchID,
			&i.MatchName,
			&i.MatchVenue,
			&i.MatchResult,
			&i.MatchTime,
			&i.MatchDate,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteSeason = `delete from ipl_match where season = ?`

func (q *Queries) DeleteSeason(ctx context.Context, season string) error {
	_, err := q.db.ExecContext(ctx, deleteSeason, season)
	return err
}

const deleteAllMatches = `delete from ipl_match`

func (q *Queries) DeleteAllMatches(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllMatches)
	return err
}

const createMatch = `insert into ipl_match (
    season, match_no, match_id, match_name, match_venue, match_result, match_time, match_date
) values (?, ?, ?, ?, ?, ?, ?, ?)
on conflict (season, match_no) do update set
    match_id = excluded.match_id,
    match_name = excluded.match_name,
    match_venue = excluded.match_venue,
    match_result = excluded.match_result,
    match_time = excluded.match_time,
    match_date = excluded.match_date`

func (q *Queries) CreateMatch(ctx context.Context, arg IplMatch) error {
	_, err := q.db.ExecContext(ctx, createMatch,
		arg.Season,
		arg.MatchNo,
		arg.MatchID,
		arg.MatchName,
		arg.MatchVenue,
		arg.MatchResult,
		arg.MatchTime,
		arg.MatchDate,
	)
	return err
}
