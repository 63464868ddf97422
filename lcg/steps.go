package lcg

import (
	"fmt"
	"math/bits"
)

// Phase is one stage of the arithmetic derivation of a single step.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMultiply
	PhaseAdd
	PhaseModulo

	PhaseCount
)

var phaseNames = [PhaseCount]string{"start", "multiply", "add", "modulo"}

func (ph Phase) String() string {
	if ph < 0 || ph >= PhaseCount {
		return "unknown"
	}
	return phaseNames[ph]
}

// MarshalText implements encoding.TextMarshaler.
func (ph Phase) MarshalText() ([]byte, error) {
	return []byte(ph.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ph *Phase) UnmarshalText(b []byte) error {
	for i, name := range phaseNames {
		if name == string(b) {
			*ph = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", b)
}

// Step is one transition X -> Next of the recurrence.
// Product and Sum are truncated to 64 bits when Overflow is set; Next is always exact.
type Step struct {
	Index    int    `json:"index"`
	X        uint64 `json:"x"`
	Product  uint64 `json:"product"`
	Sum      uint64 `json:"sum"`
	Next     uint64 `json:"next"`
	Overflow bool   `json:"overflow,omitempty"`
}

// Value is the number displayed during ph.
func (s Step) Value(ph Phase) uint64 {
	switch ph {
	case PhaseMultiply:
		return s.Product
	case PhaseAdd:
		return s.Sum
	case PhaseModulo:
		return s.Next
	default:
		return s.X
	}
}

// Pair is a point of the spectral view.
type Pair struct {
	X uint64 `json:"x"`
	Y uint64 `json:"y"`
}

// NewStep derives the intermediates of one transition from x.
func NewStep(p Params, index int, x uint64) Step {
	hi, product := bits.Mul64(p.A, x)
	sum, carry := bits.Add64(product, p.C, 0)
	return Step{
		Index:    index,
		X:        x,
		Product:  product,
		Sum:      sum,
		Next:     p.next(x),
		Overflow: hi != 0 || carry != 0,
	}
}

// Steps returns the len(seq)-1 transitions between consecutive elements of seq.
// The transition back to the repeated value is not included.
func Steps(p Params, seq []uint64) []Step {
	if len(seq) < 2 || p.M == 0 {
		return []Step{}
	}
	steps := make([]Step, 0, len(seq)-1)
	for i := 0; i < len(seq)-1; i++ {
		steps = append(steps, NewStep(p, i, seq[i]))
	}
	return steps
}

// Pairs returns (seq[i], seq[i+1]) for every consecutive pair.
func Pairs(seq []uint64) []Pair {
	if len(seq) < 2 {
		return []Pair{}
	}
	pairs := make([]Pair, 0, len(seq)-1)
	for i := 0; i < len(seq)-1; i++ {
		pairs = append(pairs, Pair{X: seq[i], Y: seq[i+1]})
	}
	return pairs
}
