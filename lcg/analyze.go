package lcg

import "fmt"

// Check names reported by Analyze.
const (
	CheckCoprime       = "c and m are coprime"
	CheckMultiplierMod = "a-1 is divisible by 4"
)

// Quality verdicts.
const (
	QualityFull    = "full"
	QualityGood    = "good"
	QualityLimited = "limited"
)

// goodCoverage is the coverage above which a partial sequence counts as good.
const goodCoverage = 0.7

// Check is a named advisory diagnostic.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// Stats summarizes a generated sequence.
type Stats struct {
	Length        int     `json:"length"`
	Period        int     `json:"period"`
	DistinctCount int     `json:"distinct_count"`
	Coverage      float64 `json:"coverage"`
	FullPeriod    bool    `json:"full_period"`
	Checks        []Check `json:"checks"`

	Quality    string `json:"quality"`
	ShortCycle bool   `json:"short_cycle"`
}

// Analyze derives Stats from seq. Only p.M is validated; the checks read p.A and p.C.
// Period is the number of transitions observed, len(seq)-1.
func Analyze(p Params, seq []uint64) (Stats, error) {
	if p.M == 0 {
		return Stats{}, fmt.Errorf("%w: modulus m must be >= 1", ErrInvalidParameter)
	}

	distinct := make(map[uint64]struct{}, len(seq))
	for _, x := range seq {
		distinct[x] = struct{}{}
	}

	st := Stats{
		Length:        len(seq),
		DistinctCount: len(distinct),
		Coverage:      float64(len(distinct)) / float64(p.M),
		FullPeriod:    uint64(len(distinct)) == p.M,
		Checks:        Checks(p),
	}
	if len(seq) > 1 {
		st.Period = len(seq) - 1
	}

	switch {
	case st.FullPeriod:
		st.Quality = QualityFull
	case st.Coverage > goodCoverage:
		st.Quality = QualityGood
	default:
		st.Quality = QualityLimited
	}
	st.ShortCycle = uint64(len(seq)) < p.M/2

	return st, nil
}

// Checks returns the simplified full-period diagnostics: coprimality of c and m
// and, for power of two moduli only, (a-1) mod 4 == 0.
func Checks(p Params) []Check {
	checks := []Check{{Name: CheckCoprime, Passed: gcd(p.C, p.M) == 1}}
	if p.M != 0 && p.M&(p.M-1) == 0 {
		checks = append(checks, Check{
			Name:   CheckMultiplierMod,
			Passed: p.A >= 1 && (p.A-1)%4 == 0,
		})
	}
	return checks
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
