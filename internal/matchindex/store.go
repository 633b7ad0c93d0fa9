package matchindex

import (
	"context"
	"database/sql"
	"fmt"
	"iplscore-backend/internal/matchindex/db"
	"iplscore-backend/lib/configutil"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("iplscore.internal.matchindex")

// Store persists the whole match index, Save always replaces what was stored
// before.
type Store interface {
	Load(ctx context.Context) (Index, error)
	Save(ctx context.Context, idx Index) error
}

// FileStore keeps the index as a single indented json file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) FileStore {
	return FileStore{Path: path}
}

// Load returns an empty index if the file does not exist yet.
func (s FileStore) Load(ctx context.Context) (Index, error) {
	_, span := tracer.Start(ctx, "FileStore.Load")
	defer span.End()

	idx, found, err := configutil.ReadFile[Index](s.Path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read match index")
		return nil, err
	}
	if !found || idx == nil {
		return Index{}, nil
	}
	return idx, nil
}

func (s FileStore) Save(ctx context.Context, idx Index) error {
	_, span := tracer.Start(ctx, "FileStore.Save")
	defer span.End()

	if idx == nil {
		idx = Index{}
	}
	err := configutil.WriteConfig(s.Path, idx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write match index")
	}
	return err
}

// OpenDatabase opens `dsn` with the libsql driver if it points at a remote
// libsql server and with sqlite otherwise.
func OpenDatabase(dsn string) (*sql.DB, error) {
	if strings.HasPrefix(dsn, "libsql://") ||
		strings.HasPrefix(dsn, "http://") ||
		strings.HasPrefix(dsn, "https://") {
		return sql.Open("libsql", dsn)
	}

	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if dsn != ":memory:" {
		_, err = database.Exec("pragma journal_mode = wal")
		if err != nil {
			database.Close()
			return nil, err
		}
	}
	return database, nil
}

// SQLStore keeps the index as one row per match.
type SQLStore struct {
	qry    *db.Queries
	makeTx db.MakeTx
}

// NewSQLStore creates the schema if it does not exist yet.
func NewSQLStore(ctx context.Context, database *sql.DB) (SQLStore, error) {
	_, err := database.ExecContext(ctx, db.Schema)
	if err != nil {
		return SQLStore{}, fmt.Errorf("create match index schema: %w", err)
	}
	return SQLStore{
		qry:    db.New(database),
		makeTx: db.NewMakeTx(database),
	}, nil
}

func (s SQLStore) Load(ctx context.Context) (Index, error) {
	ctx, span := tracer.Start(ctx, "SQLStore.Load")
	defer span.End()

	rows, err := s.qry.GetAllMatches(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to query matches")
		return nil, err
	}
	span.SetAttributes(attribute.Int("rows", len(rows)))

	idx := Index{}
	for _, r := range rows {
		idx[r.Season] = append(idx[r.Season], Match{
			Venue:  r.MatchVenue,
			Result: r.MatchResult,
			Time:   r.MatchTime,
			Name:   r.MatchName,
			Id:     r.MatchID,
			No:     int(r.MatchNo),
			Date:   r.MatchDate,
		})
	}
	return idx, nil
}

func (s SQLStore) Save(ctx context.Context, idx Index) error {
	ctx, span := tracer.Start(ctx, "SQLStore.Save")
	defer span.End()

	tx, discard, commit, err := s.makeTx()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to start transaction")
		return err
	}
	defer discard()

	err = tx.DeleteAllMatches(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to clear matches")
		return err
	}
	for season, matches := range idx {
		for _, m := range matches {
			err = tx.CreateMatch(ctx, db.IplMatch{
				Season:      season,
				MatchNo:     int64(m.No),
				MatchID:     m.Id,
				MatchName:   m.Name,
				MatchVenue:  m.Venue,
				MatchResult: m.Result,
				MatchTime:   m.Time,
				MatchDate:   m.Date,
			})
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "failed to insert match")
				return fmt.Errorf("insert %s match %d: %w", season, m.No, err)
			}
		}
	}

	return commit()
}
