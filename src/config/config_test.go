package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "./", cfg.DataDir)
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, 1.1, cfg.Scale)
	assert.Equal(t, filepath.Join("data", "cube.off"), Config{DataDir: "data"}.DataFile("cube.off"))
	assert.Equal(t, filepath.Join("out", "hull.svg"), Config{OutputDir: "out", Format: "svg"}.OutputFile("hull"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domainmesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte("datadir: /srv/meshes\nformat: svg\nwidth: 640\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/meshes", cfg.DataDir)
	assert.Equal(t, "svg", cfg.Format)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 1000, cfg.Height)
	assert.Equal(t, "./", cfg.OutputDir)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: [1, 2]\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	neg := filepath.Join(dir, "neg.yaml")
	require.NoError(t, os.WriteFile(neg, []byte("height: -1\n"), 0o644))
	_, err = Load(neg)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{EnvDataDir: "/data/", EnvOutputDir: ""}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	cfg := Default()
	cfg.ApplyEnv(lookup)
	assert.Equal(t, "/data/", cfg.DataDir)
	assert.Equal(t, "./", cfg.OutputDir)
}

func TestNewLogger(t *testing.T) {
	for _, debug := range []bool{true, false} {
		log, err := NewLogger(debug)
		require.NoError(t, err)
		require.NotNil(t, log)
	}
}

func TestResolve(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == EnvOutputDir {
			return "/tmp/figures", true
		}
		return "", false
	}
	cfg, err := Resolve("", lookup)
	require.NoError(t, err)
	assert.Equal(t, "./", cfg.DataDir)
	assert.Equal(t, "/tmp/figures", cfg.OutputDir)

	_, err = Resolve(filepath.Join(t.TempDir(), "nope.yaml"), lookup)
	assert.Error(t, err)
}
