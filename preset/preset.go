// Package preset loads named LCG parameter sets from TOML.
package preset

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tutils/lcgviz/lcg"
)

//go:embed presets.toml
var builtin string

// Preset is a named parameter set.
type Preset struct {
	Name        string `toml:"name" json:"name"`
	Description string `toml:"description" json:"description"`
	M           uint64 `toml:"m" json:"m"`
	A           uint64 `toml:"a" json:"a"`
	C           uint64 `toml:"c" json:"c"`
	Seed        uint64 `toml:"seed" json:"seed"`
}

// Params returns the preset as recurrence parameters.
func (p Preset) Params() lcg.Params {
	return lcg.Params{M: p.M, A: p.A, C: p.C, Seed: p.Seed}
}

type file struct {
	Preset []Preset `toml:"preset"`
}

// Default returns the built-in presets.
func Default() []Preset {
	ps, err := Load(strings.NewReader(builtin))
	if err != nil {
		panic(fmt.Sprintf("built-in presets: %v", err))
	}
	return ps
}

// Load decodes presets from r. Every preset needs a unique name and valid params.
func Load(r io.Reader) ([]Preset, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("unknown preset keys: %v", undec)
	}

	names := make(map[string]struct{}, len(f.Preset))
	for i, p := range f.Preset {
		if p.Name == "" {
			return nil, fmt.Errorf("preset #%d has no name", i+1)
		}
		if _, dup := names[p.Name]; dup {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		names[p.Name] = struct{}{}
		if err := p.Params().Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return f.Preset, nil
}

// LoadFile decodes the presets in path.
func LoadFile(path string) ([]Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Merge returns base with extra appended; entries of extra replace same-named ones.
func Merge(base, extra []Preset) []Preset {
	out := make([]Preset, 0, len(base)+len(extra))
	idx := make(map[string]int, len(base))
	for _, p := range base {
		idx[p.Name] = len(out)
		out = append(out, p)
	}
	for _, p := range extra {
		if i, ok := idx[p.Name]; ok {
			out[i] = p
			continue
		}
		idx[p.Name] = len(out)
		out = append(out, p)
	}
	return out
}

// Lookup finds the preset called name.
func Lookup(ps []Preset, name string) (Preset, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
