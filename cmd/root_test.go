package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gmacs/internal/editor"
	"gmacs/internal/infrastructure/sqlite"
)

func newTestPlaces(t *testing.T) *sqlite.PlaceRepository {
	t.Helper()
	db, err := sqlite.NewDB(filepath.Join(t.TempDir(), "places.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewPlaceRepository(db)
}

func TestOpenFiles_LoadsArgsIntoBuffers(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "one.txt")
	two := filepath.Join(dir, "two.txt")
	require.NoError(t, os.WriteFile(one, []byte("first"), 0644))
	require.NoError(t, os.WriteFile(two, []byte("second"), 0644))

	ed, err := editor.New()
	require.NoError(t, err)

	require.NoError(t, openFiles(ed, nil, []string{one, two}))

	// Scratch plus one buffer per file, with the first file active.
	require.Len(t, ed.Buffers(), 3)
	require.Equal(t, "one.txt", ed.ActiveBuffer().Name())
	require.Equal(t, "first", ed.ActiveBuffer().Text())
	require.Equal(t, "second", ed.Buffers()[2].Text())
}

func TestOpenFiles_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	ed, err := editor.New()
	require.NoError(t, err)

	require.NoError(t, openFiles(ed, nil, []string{path}))

	require.Equal(t, "", ed.ActiveBuffer().Text())
	require.Equal(t, path, ed.ActiveBuffer().Path())
}

func TestOpenFiles_RestoresSavedPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("some longer text"), 0644))

	places := newTestPlaces(t)
	require.NoError(t, places.Save(path, 7))

	ed, err := editor.New()
	require.NoError(t, err)

	require.NoError(t, openFiles(ed, places, []string{path}))

	require.Equal(t, 7, ed.ActiveBuffer().Point())
}

func TestSavePlaces_RecordsFileBackedBuffers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("some longer text"), 0644))

	places := newTestPlaces(t)
	ed, err := editor.New()
	require.NoError(t, err)
	require.NoError(t, openFiles(ed, places, []string{path}))
	ed.ActiveBuffer().SetPoint(5)

	savePlaces(ed, places)

	point, ok, err := places.Find(path)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5, point)
}

func TestSavePlaces_NilRepositoryIsNoop(t *testing.T) {
	ed, err := editor.New()
	require.NoError(t, err)

	require.NotPanics(t, func() { savePlaces(ed, nil) })
}
