package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesSpecExampleColumn(t *testing.T) {
	cfg := Default()
	require.Equal(t, uint64(65536), cfg.HeapSize)
	require.Equal(t, 256, cfg.DSCapacity)
	require.Equal(t, 256, cfg.RSCapacity)
	require.Equal(t, 256, cfg.CSCapacity)
	require.Equal(t, 128, cfg.SlotTableSize)
	require.Equal(t, 256, cfg.LineBufferSize)
	require.Equal(t, 32, cfg.TokenNameMax)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "froth.toml")
	contents := "heap_size = 4096\nslot_table_size = 16\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint64(4096), cfg.HeapSize)
	require.Equal(t, 16, cfg.SlotTableSize)
	require.Equal(t, Default().DSCapacity, cfg.DSCapacity)
}
