package testutil

import (
	"database/sql"
	"strings"
	"sync"
	"testing"

	_ "modernc.org/sqlite"
)

// OpenMemoryDB opens an in-memory sqlite database with `schema` applied, it
// is closed when the test ends.
func OpenMemoryDB(t testing.TB, schema string) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// every new connection to :memory: is a brand new database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if schema == "" {
		return db
	}
	_, err = db.Exec(schema)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		t.Fatal(err)
	}
	return db
}

type Report struct {
	Kind   string
	Id     string
	Params []any
	Count  int64
}

// TelemetryRecorder is a telemetry.API that keeps every report in memory.
type TelemetryRecorder struct {
	lock    sync.Mutex
	reports []Report
}

func (r *TelemetryRecorder) add(report Report) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.reports = append(r.reports, report)
}

func (r *TelemetryRecorder) ReportBroken(id string, params ...any) {
	r.add(Report{Kind: "broken", Id: id, Params: params})
}

func (r *TelemetryRecorder) ReportWarning(id string, params ...any) {
	r.add(Report{Kind: "warning", Id: id, Params: params})
}

func (r *TelemetryRecorder) ReportCount(id string, count int64) {
	r.add(Report{Kind: "count", Id: id, Count: count})
}

// Reports returns a copy of every report of the given kind, an empty kind
// matches everything.
func (r *TelemetryRecorder) Reports(kind string) []Report {
	r.lock.Lock()
	defer r.lock.Unlock()
	var out []Report
	for _, report := range r.reports {
		if kind == "" || report.Kind == kind {
			out = append(out, report)
		}
	}
	return out
}

// Ids is Reports but only the ids.
func (r *TelemetryRecorder) Ids(kind string) []string {
	var ids []string
	for _, report := range r.Reports(kind) {
		ids = append(ids, report.Id)
	}
	return ids
}
