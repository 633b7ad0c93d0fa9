package matchindex

import (
	"context"
	"iplscore-backend/lib/testutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "match_ids.json")
	store := NewFileStore(path)

	idx, err := store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, idx)

	expected := testIndex()
	require.NoError(t, store.Save(ctx, expected))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(expected, loaded); diff != "" {
		t.Fatalf("index mismatch (-want +got):\n%s", diff)
	}

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "\n  \"IPL2024\": [")
	require.Contains(t, string(contents), `"match_id": "89654"`)
}

func TestFileStoreInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match_ids.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewFileStore(path).Load(context.Background())
	require.Error(t, err)
}

func TestSQLStore(t *testing.T) {
	ctx := context.Background()
	database := testutil.OpenMemoryDB(t, "")

	store, err := NewSQLStore(ctx, database)
	require.NoError(t, err)

	idx, err := store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, idx)

	expected := testIndex()
	require.NoError(t, store.Save(ctx, expected))
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(expected, loaded); diff != "" {
		t.Fatalf("index mismatch (-want +got):\n%s", diff)
	}

	// save replaces everything that was stored before
	replacement := Index{"IPL2026": {{Name: "GT vs LSG", Id: "200001", No: 1, Venue: "NA", Date: "NA"}}}
	require.NoError(t, store.Save(ctx, replacement))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, replacement, loaded)

	// creating the store again keeps the data
	store, err = NewSQLStore(ctx, database)
	require.NoError(t, err)
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded["IPL2026"], 1)
}
