package preset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tutils/lcgviz/lcg"
)

func TestDefault(t *testing.T) {
	ps := Default()
	if len(ps) == 0 {
		t.Fatal("no built-in presets")
	}
	classic, ok := Lookup(ps, "classic")
	if !ok {
		t.Fatal("classic preset missing")
	}
	if classic.Params() != (lcg.Params{M: 16, A: 5, C: 3, Seed: 1}) {
		t.Fatalf("unexpected classic preset %+v", classic)
	}
	for _, p := range ps {
		seq, err := lcg.Generate(p.Params())
		if err != nil {
			t.Fatalf("%s: %v", p.Name, err)
		}
		st, _ := lcg.Analyze(p.Params(), seq)
		t.Logf("%-14s %v period=%d coverage=%.2f", p.Name, p.Params(), st.Period, st.Coverage)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":    "[[preset]\nname=",
		"no name":   "[[preset]]\nm = 4\n",
		"duplicate": "[[preset]]\nname=\"x\"\nm=4\n[[preset]]\nname=\"x\"\nm=4\n",
		"unknown":   "[[preset]]\nname=\"x\"\nm=4\nmodulus=3\n",
		"zero m":    "[[preset]]\nname=\"x\"\nm=0\n",
	}
	for name, doc := range tests {
		if _, err := Load(strings.NewReader(doc)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}

	_, err := Load(strings.NewReader("[[preset]]\nname=\"bad\"\nm=4\nseed=9\n"))
	if !errors.Is(err, lcg.ErrInvalidParameter) || !strings.Contains(err.Error(), `"bad"`) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestLoadFileAndMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	doc := "[[preset]]\nname=\"classic\"\nm=8\na=5\nc=1\n\n[[preset]]\nname=\"mine\"\nm=10\na=1\nc=3\nseed=2\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	extra, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	merged := Merge(Default(), extra)
	if len(merged) != len(Default())+1 {
		t.Fatalf("unexpected merged length %d", len(merged))
	}
	if p, _ := Lookup(merged, "classic"); p.M != 8 {
		t.Fatalf("classic was not replaced: %+v", p)
	}
	if p, ok := Lookup(merged, "mine"); !ok || p.Seed != 2 {
		t.Fatalf("mine missing: %+v", p)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
