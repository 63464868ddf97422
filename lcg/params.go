package lcg

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidParameter is returned for parameters outside the recurrence domain.
var ErrInvalidParameter = errors.New("invalid parameter")

// Params holds the recurrence X(n+1) = (A*X(n) + C) mod M started at Seed.
type Params struct {
	M    uint64 `json:"m" toml:"m"`
	A    uint64 `json:"a" toml:"a"`
	C    uint64 `json:"c" toml:"c"`
	Seed uint64 `json:"seed" toml:"seed"`
}

// Validate rejects a zero modulus and a seed outside [0, M).
// Out of range seeds are never reduced mod M.
func (p Params) Validate() error {
	if p.M == 0 {
		return fmt.Errorf("%w: modulus m must be >= 1", ErrInvalidParameter)
	}
	if p.Seed >= p.M {
		return fmt.Errorf("%w: seed %d must be < m (%d)", ErrInvalidParameter, p.Seed, p.M)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("m=%d a=%d c=%d seed=%d", p.M, p.A, p.C, p.Seed)
}

// next computes (a*x + c) mod m exactly, using a 128 bit intermediate.
func (p Params) next(x uint64) uint64 {
	hi, lo := bits.Mul64(p.A, x)
	lo, carry := bits.Add64(lo, p.C, 0)
	hi += carry
	// Rem64 does not panic when hi >= m.
	return bits.Rem64(hi, lo, p.M)
}
