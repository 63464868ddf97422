package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tutils/lcgviz/lcg"
	"github.com/tutils/lcgviz/sharecode"
)

var classic = lcg.Params{M: 16, A: 5, C: 3, Seed: 1}

func TestSequenceCaption(t *testing.T) {
	if got := SequenceCaption([]uint64{1, 8, 11}, 20); got != "1 → 8 → 11" {
		t.Fatalf("got %q", got)
	}
	if got := SequenceCaption([]uint64{1, 8, 11, 10}, 2); got != "1 → 8 → ..." {
		t.Fatalf("got %q", got)
	}
	if got := SequenceCaption(nil, 2); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestCaption(t *testing.T) {
	s := lcg.NewStep(classic, 0, 8)
	want := []string{
		"Step 1: Start with X_n = 8",
		"Step 2: Multiply by 5 → (5 × 8) = 40",
		"Step 3: Add 3 → 40 + 3 = 43",
		"Step 4: Modulo 16 → 43 mod 16 = 11",
	}
	for ph := lcg.PhaseStart; ph < lcg.PhaseCount; ph++ {
		if got := Caption(classic, s, ph); got != want[ph] {
			t.Errorf("%v: got %q, want %q", ph, got, want[ph])
		}
	}
}

func TestBarScale(t *testing.T) {
	if s := BarScale(lcg.Params{M: 2, A: 1, C: 1}); s != 20 {
		t.Fatalf("small scale = %d", s)
	}
	if s := BarScale(classic); s != 83 {
		t.Fatalf("classic scale = %d", s)
	}
	if s := BarScale(lcg.Params{M: 1 << 40, A: 1 << 40}); s != ^uint64(0) {
		t.Fatalf("overflowing scale = %d", s)
	}
}

func TestBar(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf, WithWidth(12), WithColor(ColorOff))
	if err := r.Bar(classic, 83, lcg.PhaseAdd); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "|"+strings.Repeat("█", 10)+"|\n" {
		t.Fatalf("got %q", got)
	}
	buf.Reset()
	r.Bar(classic, 0, lcg.PhaseStart)
	if got := buf.String(); got != "|"+strings.Repeat(" ", 10)+"|\n" {
		t.Fatalf("got %q", got)
	}
}

func TestScatter(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf, WithWidth(64), WithHeight(40), WithColor(ColorOff))
	seq, _ := lcg.Generate(classic)
	if err := r.Scatter(classic.M, lcg.Pairs(seq)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Log("\n" + out)
	if n := strings.Count(out, "■") + strings.Count(out, "◆"); n != len(seq)-1 {
		t.Fatalf("expected %d points, got %d", len(seq)-1, n)
	}
	if strings.Count(out, "◆") != 1 {
		t.Fatal("last pair is not highlighted")
	}

	buf.Reset()
	if err := r.Scatter(1, []lcg.Pair{{X: 0, Y: 0}, {X: 5, Y: 5}}); err != nil {
		t.Fatal(err)
	}
}

func TestColor(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf, WithColor(ColorOn))
	if !r.Colored() {
		t.Fatal("ColorOn must colour any writer")
	}
	r.Checks([]lcg.Check{{Name: "x", Passed: false}})
	if !strings.Contains(buf.String(), "\033[31m") {
		t.Fatalf("no red in %q", buf.String())
	}
	if New(&bytes.Buffer{}).Colored() {
		t.Fatal("auto mode must not colour a buffer")
	}
	for s, want := range map[string]ColorMode{"": ColorAuto, "always": ColorOn, "OFF": ColorOff} {
		if got, err := ParseColorMode(s); err != nil || got != want {
			t.Errorf("%q: got %v, %v", s, got, err)
		}
	}
	if _, err := ParseColorMode("sometimes"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestWriteText(t *testing.T) {
	rep, err := NewReport(classic)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Write("text", buf, rep, WithColor(ColorOff)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Log("\n" + out)
	for _, want := range []string{
		"X(n+1) = (5·X(n) + 3) mod 16",
		"Sequence Length 16   Period 15   Coverage 100.0%",
		"Sequence: 1 → 8 → 11",
		"✓ Full period! Generates all 16 possible values.",
		"✓ c and m are coprime",
		"✓ a-1 is divisible by 4",
		"Hull–Dobell: full period guaranteed",
		"Share: " + sharecode.Prefix,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("colour written with ColorOff")
	}
}

func TestWriteJSON(t *testing.T) {
	rep, err := NewReport(lcg.Params{M: 16, A: 2, C: 0, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Write("json", buf, rep); err != nil {
		t.Fatal(err)
	}
	var got struct {
		Sequence []uint64 `json:"sequence"`
		Stats    struct {
			Period        int  `json:"period"`
			DistinctCount int  `json:"distinct_count"`
			FullPeriod    bool `json:"full_period"`
			Checks        []struct {
				Name   string `json:"name"`
				Passed bool   `json:"passed"`
			} `json:"checks"`
		} `json:"stats"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Sequence) != 5 || got.Stats.Period != 4 || got.Stats.DistinctCount != 5 || got.Stats.FullPeriod {
		t.Fatalf("unexpected json %s", buf.String())
	}
	if len(got.Stats.Checks) != 2 || got.Stats.Checks[0].Passed {
		t.Fatalf("unexpected checks %s", buf.String())
	}
	if p, err := sharecode.Decode(got.Token); err != nil || p != rep.Params {
		t.Fatalf("token does not decode: %v", err)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	rep, _ := NewReport(classic)
	if err := Write("xml", &bytes.Buffer{}, rep); err == nil {
		t.Fatal("expected an error")
	}
	if fs := Formats(); len(fs) < 2 || fs[0] != "json" || fs[1] != "text" {
		t.Fatalf("formats = %v", fs)
	}
}
