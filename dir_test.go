package csvfixture

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/csvfixture/domain/model"
)

func TestLoader_LoadDir(t *testing.T) {
	t.Parallel()

	t.Run("OS directory", func(t *testing.T) {
		t.Parallel()

		got, err := newTestLoader(t).LoadDir(context.Background(), "dir", 0)
		require.NoError(t, err)
		require.Len(t, got, 2)

		require.Contains(t, got, "dir/a.csv")
		require.Contains(t, got, "dir/nested/b.tsv")
		assert.Len(t, got["dir/a.csv"], 2)
		require.Len(t, got["dir/nested/b.tsv"], 1)
		assert.Equal(t, []any{"gamma", []string{"x", "y"}}, got["dir/nested/b.tsv"][0].Values())
	})

	t.Run("Embedded filesystem", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"fixtures/session/insert.csv": &fstest.MapFile{Data: []byte("device\nroot.sg.d1\n")},
			"fixtures/session/notes.txt":  &fstest.MapFile{Data: []byte("ignored")},
			"fixtures/table/ddl.tsv":      &fstest.MapFile{Data: []byte("name\tcolumns\nt1\tl:a,b\n")},
		}
		loader := NewLoader("fixtures").WithFS(fsys).WithLogger(newTestLoader(t).logger)

		got, err := loader.LoadDir(context.Background(), "session", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"session/insert.csv"}, mapKeys(got))

		all, err := loader.LoadDir(context.Background(), "", 0)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"session/insert.csv", "table/ddl.tsv"}, mapKeys(all))
	})

	t.Run("Binary fixtures next to delimited ones", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "ids.csv"), []byte("name\nroot\n"), 0o600))
		writeXLSX(t, dir, "schema.xlsx", [][]any{
			{"device", "tags"},
			{"root.sg.d1", "m:unit:c"},
		})
		writeParquet(t, dir, "points.parquet")

		got, err := NewLoader(dir).WithLogger(newTestLoader(t).logger).LoadDir(context.Background(), "", 0)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"ids.csv", "schema.xlsx", "points.parquet"}, mapKeys(got))

		require.Len(t, got["schema.xlsx"], 1)
		assert.Equal(t, []any{"root.sg.d1", map[string]string{"unit": "c"}}, got["schema.xlsx"][0].Values())
		assert.Len(t, got["points.parquet"], 2)
	})

	t.Run("First failure aborts", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "good.csv"), []byte("name\nok\n"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.csv"), []byte("name\n\"l:m:a:1,x\"\n"), 0o600))

		got, err := NewLoader(dir).WithLogger(newTestLoader(t).logger).LoadDir(context.Background(), "", 0)
		require.ErrorIs(t, err, model.ErrMalformedCell)
		assert.Nil(t, got)
	})

	t.Run("Missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := newTestLoader(t).LoadDir(context.Background(), "no-such-dir", 0)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newTestLoader(t).LoadDir(ctx, "dir", 0)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoader_CollectFixtures(t *testing.T) {
	t.Parallel()

	paths, err := newTestLoader(t).collectFixtures("dir")
	require.NoError(t, err)
	assert.Equal(t, []string{"dir/a.csv", "dir/nested/b.tsv"}, paths)
}

func mapKeys(m map[string][]Tuple) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
