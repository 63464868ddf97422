package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/tutils/lcgviz/lcg"
	"github.com/tutils/lcgviz/sharecode"
)

// Report bundles everything the front ends show for one parameter set.
type Report struct {
	Params     lcg.Params           `json:"params"`
	Formula    string               `json:"formula"`
	Sequence   []uint64             `json:"sequence"`
	Stats      lcg.Stats            `json:"stats"`
	HullDobell lcg.HullDobellReport `json:"hull_dobell"`
	Steps      []lcg.Step           `json:"steps,omitempty"`
	Pairs      []lcg.Pair           `json:"pairs,omitempty"`
	Token      string               `json:"token,omitempty"`
}

// NewReport generates and analyzes p. Steps and pairs are always filled in.
func NewReport(p lcg.Params, opts ...lcg.GenerateOption) (*Report, error) {
	seq, err := lcg.Generate(p, opts...)
	if err != nil {
		return nil, err
	}
	st, err := lcg.Analyze(p, seq)
	if err != nil {
		return nil, err
	}
	tok, err := sharecode.Encode(p)
	if err != nil {
		return nil, err
	}
	return &Report{
		Params:     p,
		Formula:    Formula(p),
		Sequence:   seq,
		Stats:      st,
		HullDobell: lcg.HullDobell(p),
		Steps:      lcg.Steps(p, seq),
		Pairs:      lcg.Pairs(seq),
		Token:      tok,
	}, nil
}

// WriterFunc writes rep in one format.
type WriterFunc func(w io.Writer, rep *Report, opts ...Option) error

var writers = map[string]WriterFunc{}

// Register adds a report format. The last registration of a name wins.
func Register(format string, fn WriterFunc) {
	writers[format] = fn
}

// Formats lists the registered formats.
func Formats() []string {
	fs := make([]string, 0, len(writers))
	for f := range writers {
		fs = append(fs, f)
	}
	sort.Strings(fs)
	return fs
}

// Write writes rep in format.
func Write(format string, w io.Writer, rep *Report, opts ...Option) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown format %q (have %v)", format, Formats())
	}
	return fn(w, rep, opts...)
}

func init() {
	Register("text", writeText)
	Register("json", writeJSON)
}

func writeJSON(w io.Writer, rep *Report, _ ...Option) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func writeText(w io.Writer, rep *Report, opts ...Option) error {
	r := New(w, opts...)
	steps := []func() error{
		func() error { return r.Summary(rep.Params, rep.Stats) },
		func() error { return r.Sequence(rep.Sequence) },
		func() error { return r.printf("\n%s\n", r.paint(colorBold, "Spectral view")) },
		func() error { return r.Scatter(rep.Params.M, rep.Pairs) },
		func() error { return r.printf("\n%s\n", r.paint(colorBold, "Sequence quality")) },
		func() error { return r.Quality(rep.Params, rep.Stats) },
		func() error { return r.printf("\n%s\n", r.paint(colorBold, "Parameter quality")) },
		func() error { return r.Checks(rep.Stats.Checks) },
		func() error { return r.printf("\n%s\n", r.paint(colorBold, "Hull–Dobell theorem")) },
		func() error { return r.HullDobell(rep.HullDobell) },
	}
	if rep.Token != "" {
		steps = append(steps, func() error {
			return r.printf("\nShare: %s%s\n", sharecode.Prefix, rep.Token)
		})
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
