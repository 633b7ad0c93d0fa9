package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

type IplMatch struct {
	Season      string
	MatchNo     int64
	MatchID     string
	MatchName   string
	MatchVenue  string
	MatchResult string
	MatchTime   string
	MatchDate   string
}
