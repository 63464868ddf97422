package httpsrv

import (
	"time"

	"github.com/tutils/lcgviz/preset"
)

// ServerOptions is server options
type ServerOptions struct {
	addr       string
	maxModulus uint64
	stepDelay  time.Duration
	presets    []preset.Preset
}

// ServerOption is option setter for server
type ServerOption func(*ServerOptions)

// default server options
var (
	DefaultListenAddress        = "0.0.0.0:8080"
	DefaultMaxModulus    uint64 = 4096
	DefaultStepDelay            = 500 * time.Millisecond
)

func newServerOptions(opts ...ServerOption) *ServerOptions {
	opt := &ServerOptions{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.maxModulus == 0 {
		opt.maxModulus = DefaultMaxModulus
	}
	if opt.stepDelay <= 0 {
		opt.stepDelay = DefaultStepDelay
	}
	if opt.presets == nil {
		opt.presets = preset.Default()
	}

	return opt
}

// WithListenAddress sets server listen address opt
func WithListenAddress(addr string) ServerOption {
	return func(opts *ServerOptions) {
		opts.addr = addr
	}
}

// WithMaxModulus caps the modulus accepted from clients.
func WithMaxModulus(m uint64) ServerOption {
	return func(opts *ServerOptions) {
		opts.maxModulus = m
	}
}

// WithStepDelay sets the default pause between animation phases.
func WithStepDelay(d time.Duration) ServerOption {
	return func(opts *ServerOptions) {
		opts.stepDelay = d
	}
}

// WithPresets sets the presets offered by the UI.
func WithPresets(ps []preset.Preset) ServerOption {
	return func(opts *ServerOptions) {
		opts.presets = ps
	}
}
