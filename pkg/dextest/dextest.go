// Package dextest provides a small imported pokedex for tests.
package dextest

import (
	"context"
	"embed"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/notjagan/movedex/pkg/importer"
	"github.com/notjagan/movedex/pkg/model"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/*.csv
var fixtures embed.FS

func Fixtures() fs.FS {
	sub, err := fs.Sub(fixtures, "testdata")
	if err != nil {
		panic(err)
	}

	return sub
}

// NewModel imports the fixture tables into a fresh database and returns a
// read-only model over it.
func NewModel(t *testing.T) *model.Model {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pokedex.db")

	rw, err := model.New(ctx, path, false)
	require.NoError(t, err)
	_, err = importer.New(rw).ImportFS(ctx, Fixtures())
	require.NoError(t, err)
	require.NoError(t, rw.Close())

	mdl, err := model.New(ctx, path, true)
	require.NoError(t, err)
	t.Cleanup(func() { mdl.Close() })

	return mdl
}

// NewWritableModel returns an empty writable model with the schema in place.
func NewWritableModel(t *testing.T) *model.Model {
	t.Helper()
	ctx := context.Background()

	mdl, err := model.New(ctx, filepath.Join(t.TempDir(), "pokedex.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { mdl.Close() })
	require.NoError(t, mdl.EnsureSchema(ctx))

	return mdl
}
