package netgen

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_SpeciesOpenFailsAfterResolve(t *testing.T) {
	dir := t.TempDir()
	paths := Paths{
		Template: filepath.Join(dir, "network.template"),
		Species:  filepath.Join(dir, "network.net"),
		Output:   filepath.Join(dir, "network.F90"),
	}
	require.NoError(t, os.WriteFile(paths.Template, []byte("@@NSPEC@@\n"), 0o600))
	require.NoError(t, os.WriteFile(paths.Species, []byte("He4 he4 4 2\n"), 0o600))

	g := NewGenerator(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	g.open = func(path string) (io.ReadCloser, error) {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}

	err := g.Run(context.Background(), paths)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, ErrMissingFile)
	assert.ErrorIs(t, err, fs.ErrPermission)

	var mfErr *MissingFileError
	require.ErrorAs(t, err, &mfErr)
	assert.Equal(t, "species", mfErr.Role)
	assert.Equal(t, []string{paths.Species}, mfErr.Tried)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "species lookup", genErr.Stage)

	data, err := os.ReadFile(paths.Output)
	require.NoError(t, err)
	assert.Equal(t, FailureMessage, string(data))
}
