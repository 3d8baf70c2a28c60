package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/meshkit/trimesh/config"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, 100, s.Number)
	require.Equal(t, "./output.png", s.OutputPath)
	require.NotZero(t, s.Seed, "a missing seed must be resolved to a random nonzero value")
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	s, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, 100, s.Number)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 99\nnumber: 250\noutput_path: /tmp/out.png\n"), 0o644))

	s, err := config.Load(path)
	require.NoError(t, err)
	require.EqualValues(t, 99, s.Seed)
	require.Equal(t, 250, s.Number)
	require.Equal(t, "/tmp/out.png", s.OutputPath)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 99\nnumber: 250\n"), 0o644))

	t.Setenv("TRI_SEED", "7")
	t.Setenv("TRI_NUMBER", "5")

	s, err := config.Load(path)
	require.NoError(t, err)
	require.EqualValues(t, 7, s.Seed)
	require.Equal(t, 5, s.Number)
}

func TestLoad_OptionsOverrideEverything(t *testing.T) {
	t.Setenv("TRI_SEED", "7")

	s, err := config.Load("", config.WithSeed(42), config.WithNumber(8), config.WithOutputPath("/tmp/x.png"))
	require.NoError(t, err)
	require.EqualValues(t, 42, s.Seed)
	require.Equal(t, 8, s.Number)
	require.Equal(t, "/tmp/x.png", s.OutputPath)
}

func TestLoad_InvalidNumber(t *testing.T) {
	_, err := config.Load("", config.WithNumber(0))
	require.ErrorIs(t, err, config.ErrInvalidNumber)
}

func TestLoad_InvalidOutputPath(t *testing.T) {
	_, err := config.Load("", config.WithOutputPath(""))
	require.ErrorIs(t, err, config.ErrInvalidOutputPath)
}
