// Package render draws LCG sequences, derivations and diagnostics as terminal text.
//
// All styling lives on a Renderer, so two renderers with different widths or
// colour settings can write side by side.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ColorMode selects when ANSI colour is written.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

// ParseColorMode accepts "auto", "on"/"always" and "off"/"never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "on", "always":
		return ColorOn, nil
	case "off", "never":
		return ColorOff, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

// Options is renderer options
type Options struct {
	color        ColorMode
	width        int
	height       int
	captionLimit int
}

// Option is option setter for Renderer
type Option func(*Options)

// default renderer options
var (
	DefaultWidth        = 64
	DefaultHeight       = 24
	DefaultCaptionLimit = 20
)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}
	if opt.width <= 0 {
		opt.width = DefaultWidth
	}
	if opt.height <= 0 {
		opt.height = DefaultHeight
	}
	if opt.captionLimit <= 0 {
		opt.captionLimit = DefaultCaptionLimit
	}
	return opt
}

// WithColor sets colour mode opt
func WithColor(mode ColorMode) Option {
	return func(opts *Options) {
		opts.color = mode
	}
}

// WithWidth sets the width in columns of bars and scatter plots.
func WithWidth(n int) Option {
	return func(opts *Options) {
		opts.width = n
	}
}

// WithHeight sets the height in rows of scatter plots.
func WithHeight(n int) Option {
	return func(opts *Options) {
		opts.height = n
	}
}

// WithCaptionLimit sets how many sequence values the one-line caption shows.
func WithCaptionLimit(n int) Option {
	return func(opts *Options) {
		opts.captionLimit = n
	}
}

// Renderer writes text views to a writer.
type Renderer struct {
	w       io.Writer
	opts    Options
	colored bool
}

// New returns a Renderer on w. In ColorAuto mode colour is used only when w is a terminal.
func New(w io.Writer, opts ...Option) *Renderer {
	opt := newOptions(opts...)
	r := &Renderer{w: w, opts: *opt}

	f, isFile := w.(*os.File)
	switch opt.color {
	case ColorOn:
		r.colored = true
	case ColorAuto:
		if isFile {
			fd := f.Fd()
			r.colored = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		}
	}
	if r.colored && isFile {
		r.w = colorable.NewColorable(f)
	}
	return r
}

// Colored reports whether ANSI sequences are written.
func (r *Renderer) Colored() bool {
	return r.colored
}

// TerminalSize returns the size of the terminal behind f.
func TerminalSize(f *os.File) (width, height int, ok bool) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}

type color string

const (
	colorReset   color = "\033[0m"
	colorRed     color = "\033[31m"
	colorGreen   color = "\033[32m"
	colorYellow  color = "\033[33m"
	colorBlue    color = "\033[34m"
	colorMagenta color = "\033[35m"
	colorCyan    color = "\033[36m"
	colorBold    color = "\033[1m"
)

func (r *Renderer) paint(c color, s string) string {
	if !r.colored {
		return s
	}
	return string(c) + s + string(colorReset)
}

func (r *Renderer) printf(format string, v ...interface{}) error {
	_, err := fmt.Fprintf(r.w, format, v...)
	return err
}
