package lcg

import "math"

// GenerateOptions is generate options
type GenerateOptions struct {
	maxLength    int
	hasMaxLength bool
}

// GenerateOption is option setter for Generate
type GenerateOption func(*GenerateOptions)

// WithMaxLength bounds the number of emitted terms.
// Values <= 0 produce an empty sequence.
func WithMaxLength(n int) GenerateOption {
	return func(opts *GenerateOptions) {
		opts.maxLength = n
		opts.hasMaxLength = true
	}
}

// DefaultMaxLength is m+1: a sequence over m values must repeat within m+1 draws.
func DefaultMaxLength(m uint64) int {
	if m >= math.MaxInt {
		return math.MaxInt
	}
	return int(m) + 1
}

func newGenerateOptions(m uint64, opts ...GenerateOption) *GenerateOptions {
	opt := &GenerateOptions{}
	for _, o := range opts {
		o(opt)
	}
	if !opt.hasMaxLength {
		opt.maxLength = DefaultMaxLength(m)
	}
	return opt
}

// Generate runs the recurrence from p.Seed until a previously seen value comes
// up again (once the output holds more than one element) or the max length is
// reached. The repeated value itself is not emitted.
func Generate(p Params, opts ...GenerateOption) ([]uint64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	opt := newGenerateOptions(p.M, opts...)
	if opt.maxLength <= 0 {
		return []uint64{}, nil
	}

	hint := opt.maxLength
	if hint > 1<<12 {
		hint = 1 << 12
	}
	seq := make([]uint64, 0, hint)
	seen := make(map[uint64]struct{}, hint)

	src := &Source{p: p, state: p.Seed}
	for {
		x := src.Peek()
		if _, ok := seen[x]; ok && len(seq) > 1 {
			break
		}
		seen[x] = struct{}{}
		seq = append(seq, x)
		if len(seq) >= opt.maxLength {
			break
		}
		src.Next()
	}
	return seq, nil
}
