package generate

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/261015-go-pkg-netgen/internal/command"
	"github.com/lwmacct/261015-go-pkg-netgen/internal/config"
	"github.com/lwmacct/261015-go-pkg-netgen/pkg/netgen"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func networkDir(t *testing.T, speciesDef string) config.NetworkConfig {
	t.Helper()

	dir := t.TempDir()
	cfg := config.NetworkConfig{
		Template: filepath.Join(dir, "network.template"),
		Species:  filepath.Join(dir, "network.net"),
		Output:   filepath.Join(dir, "network_properties.F90"),
	}
	require.NoError(t, os.WriteFile(cfg.Template, []byte("nspec = @@NSPEC@@\n"), 0o600))
	require.NoError(t, os.WriteFile(cfg.Species, []byte(speciesDef), 0o600))

	return cfg
}

func TestCheckRequired(t *testing.T) {
	err := checkRequired(config.NetworkConfig{Template: "t"})
	require.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, err.Error(), "--network-output")
	assert.Contains(t, err.Error(), "--network-species")
	assert.NotContains(t, err.Error(), "--network-template")

	assert.NoError(t, checkRequired(config.NetworkConfig{Template: "t", Output: "o", Species: "s"}))
}

func TestRun_UsageWritesNothing(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.F90")

	err := run(context.Background(), config.NetworkConfig{Output: output}, discardLogger())
	require.ErrorIs(t, err, ErrUsage)
	assert.NoFileExists(t, output)
}

func TestRun_Success(t *testing.T) {
	cfg := networkDir(t, "He4 he4 4 2\n")

	require.NoError(t, run(context.Background(), cfg, discardLogger()))

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, netgen.DefaultHeader+"nspec = 1\n", string(data))
}

func TestRun_ValidationFailure(t *testing.T) {
	cfg := networkDir(t, "He4 he4 4 2\nHe4 he4 4 2\n")

	err := run(context.Background(), cfg, discardLogger())
	require.ErrorIs(t, err, netgen.ErrGenerationFailed)

	data, readErr := os.ReadFile(cfg.Output)
	require.NoError(t, readErr)
	assert.Equal(t, netgen.FailureMessage, string(data))
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "usage", err: ErrUsage, code: command.ExitUsage},
		{name: "missing file", err: &netgen.MissingFileError{Role: "species", Tried: []string{"x"}, Err: os.ErrNotExist}, code: command.ExitUsage},
		{
			name: "species unreadable after lookup",
			err: &netgen.GenerationError{
				Stage: "species lookup",
				Err:   &netgen.MissingFileError{Role: "species", Tried: []string{"x"}, Err: fs.ErrPermission},
			},
			code: command.ExitUsage,
		},
		{name: "generation failed", err: &netgen.GenerationError{Stage: "species parsing", Err: errors.New("bad")}, code: command.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var exitErr cli.ExitCoder
			require.ErrorAs(t, exitError(tt.err), &exitErr)
			assert.Equal(t, tt.code, exitErr.ExitCode())
		})
	}

	assert.NoError(t, exitError(nil))
}

func TestCommand_Flags(t *testing.T) {
	cfg := networkDir(t, "He4 he4 4 2\nC12 c12 12 6\n")
	t.Chdir(t.TempDir())

	var stderr bytes.Buffer
	root := &cli.Command{
		Name:      "netgen",
		ErrWriter: &stderr,
		Commands:  []*cli.Command{newCommand()},
	}

	err := root.Run(context.Background(), []string{
		"netgen", "generate",
		"-t", cfg.Template,
		"-s", cfg.Species,
		"-o", cfg.Output,
		"--log-level", "debug",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, netgen.DefaultHeader+"nspec = 2\n", string(data))
	assert.Contains(t, stderr.String(), "Species registry built")
}

func TestCommand_IgnoresForeignConfigFile(t *testing.T) {
	cfg := networkDir(t, "He4 he4 4 2\n")

	// 构建目录中其他程序的 config.yaml，结构与本工具不兼容
	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "config.yaml"), []byte("log: verbose\n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(workDir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "config", "config.yaml"), []byte("network: 42\n"), 0o600))
	t.Chdir(workDir)

	root := &cli.Command{
		Name:      "netgen",
		ErrWriter: io.Discard,
		Commands:  []*cli.Command{newCommand()},
	}

	err := root.Run(context.Background(), []string{
		"netgen", "generate", "-t", cfg.Template, "-s", cfg.Species, "-o", cfg.Output,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, netgen.DefaultHeader+"nspec = 1\n", string(data))
}

func TestCommand_DescriptionListsKeywords(t *testing.T) {
	cmd := newCommand()
	for _, kw := range netgen.Keywords() {
		assert.Contains(t, cmd.Description, kw)
	}
}
