// Package config carries froth's build-time configuration values
// (spec.md §6): cell width, heap size, stack capacities, slot table
// size, REPL line buffer size, and maximum identifier length. These are
// compile-time constants in the C source (#define / -D flags); this
// repository instead loads them from an optional froth.toml with
// spec.md §6's example-column values as defaults, then lets cmd/froth's
// CLI flags override them. CellSizeBits is reported for diagnostics
// only — the cell width itself is fixed at build time by a cell8 /
// cell16 / cell32 / cell64 build tag (internal/cell), not by this file.
package config

import (
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/nikokozak/froth/internal/cell"
)

// Config holds every build-time value named in spec.md §6.
type Config struct {
	CellSizeBits   int    `toml:"cell_size_bits"`
	HeapSize       uint64 `toml:"heap_size"`
	DSCapacity     int    `toml:"ds_capacity"`
	RSCapacity     int    `toml:"rs_capacity"`
	CSCapacity     int    `toml:"cs_capacity"`
	SlotTableSize  int    `toml:"slot_table_size"`
	LineBufferSize int    `toml:"line_buffer_size"`
	TokenNameMax   int    `toml:"token_name_max"`
}

// Default returns spec.md §6's example-column values. Every test in
// this repository that needs a Config uses this rather than depending
// on an ambient froth.toml.
func Default() Config {
	return Config{
		CellSizeBits:   cell.Bits,
		HeapSize:       65536,
		DSCapacity:     256,
		RSCapacity:     256,
		CSCapacity:     256,
		SlotTableSize:  128,
		LineBufferSize: 256,
		TokenNameMax:   32,
	}
}

// Load reads a TOML file at path over top of Default(), returning the
// merged configuration. A missing path is not an error: Default() is
// returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}
