package testutil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomSwitchDistribution(t *testing.T) {
	rndm := rand.New(rand.NewSource(1))
	pick := RandomSwitch(1, 3)

	counts := [2]int{}
	for range 4000 {
		counts[pick(rndm)]++
	}
	require.InDelta(t, 1000, counts[0], 150)
	require.InDelta(t, 3000, counts[1], 150)
}

func TestRandomSwitchRejectsBadWeights(t *testing.T) {
	require.Panics(t, func() { RandomSwitch() })
	require.Panics(t, func() { RandomSwitch(1, 0) })
}

func TestTelemetryRecorder(t *testing.T) {
	rec := &TelemetryRecorder{}
	rec.ReportWarning("scorecard:toss", "absent")
	rec.ReportBroken("store:save", "disk full")
	rec.ReportCount("matches", 74)

	require.Equal(t, []string{"scorecard:toss"}, rec.Ids("warning"))
	require.Len(t, rec.Reports(""), 3)
	require.Equal(t, int64(74), rec.Reports("count")[0].Count)
}

func TestOpenMemoryDB(t *testing.T) {
	db := OpenMemoryDB(t, "create table t (v integer);")
	_, err := db.Exec("insert into t (v) values (1)")
	require.NoError(t, err)

	var v int
	require.NoError(t, db.QueryRow("select v from t").Scan(&v))
	require.Equal(t, 1, v)
}
