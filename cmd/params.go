package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/lcgviz/lcg"
	"github.com/tutils/lcgviz/preset"
	"github.com/tutils/lcgviz/render"
)

var paramNames = []string{"m", "a", "c", "seed"}

// addParamFlags registers the recurrence parameter flags on cmd.
func addParamFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Uint64("m", 16, "modulus")
	flags.Uint64("a", 5, "multiplier")
	flags.Uint64("c", 3, "increment")
	flags.Uint64("seed", 1, "starting value X(0), must be below m")
	flags.StringP("preset", "p", "", "start from a named preset; explicit parameter flags override it")
}

// loadPresets returns the built-in presets merged with the configured presets file.
func loadPresets() ([]preset.Preset, error) {
	ps := preset.Default()
	if path := viper.GetString("presets"); path != "" {
		extra, err := preset.LoadFile(path)
		if err != nil {
			return nil, err
		}
		ps = preset.Merge(ps, extra)
	}
	return ps, nil
}

// paramsFromFlags resolves the parameters of cmd from its preset and parameter flags.
func paramsFromFlags(cmd *cobra.Command) (lcg.Params, error) {
	p := lcg.Params{
		M:    viper.GetUint64("m"),
		A:    viper.GetUint64("a"),
		C:    viper.GetUint64("c"),
		Seed: viper.GetUint64("seed"),
	}
	name := viper.GetString("preset")
	if name == "" {
		return p, p.Validate()
	}

	ps, err := loadPresets()
	if err != nil {
		return p, err
	}
	pr, ok := preset.Lookup(ps, name)
	if !ok {
		return p, fmt.Errorf("unknown preset %q", name)
	}
	base := pr.Params()
	flags := cmd.Flags()
	for _, n := range paramNames {
		if flags.Changed(n) {
			continue
		}
		switch n {
		case "m":
			p.M = base.M
		case "a":
			p.A = base.A
		case "c":
			p.C = base.C
		case "seed":
			p.Seed = base.Seed
		}
	}
	return p, p.Validate()
}

// renderOptions builds renderer options from the colour setting and the size of out.
func renderOptions(out io.Writer) ([]render.Option, error) {
	mode, err := render.ParseColorMode(viper.GetString("color"))
	if err != nil {
		return nil, err
	}
	opts := []render.Option{render.WithColor(mode)}
	if f, ok := out.(*os.File); ok {
		if w, h, ok := render.TerminalSize(f); ok {
			opts = append(opts, render.WithWidth(w), render.WithHeight(h-2))
		}
	}
	return opts, nil
}
