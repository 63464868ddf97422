package lcg

import "fmt"

// HullDobellReport lists the full-theorem conditions for a full period with c != 0.
type HullDobellReport struct {
	Conditions []Check `json:"conditions"`
	FullPeriod bool    `json:"full_period"`
}

// HullDobell evaluates:
//  1. gcd(c, m) == 1
//  2. every prime factor of m divides a-1
//  3. if 4 divides m then 4 divides a-1
//
// m == 1 always has full period.
func HullDobell(p Params) HullDobellReport {
	if p.M == 1 {
		return HullDobellReport{FullPeriod: true, Conditions: []Check{}}
	}

	divides := func(d uint64) bool {
		// a-1 is -1 when a is 0; no d >= 2 divides it.
		return p.A >= 1 && (p.A-1)%d == 0
	}

	factors := PrimeFactors(p.M)
	primesOK := true
	for _, f := range factors {
		if !divides(f) {
			primesOK = false
			break
		}
	}

	r := HullDobellReport{
		Conditions: []Check{
			{Name: CheckCoprime, Passed: gcd(p.C, p.M) == 1},
			{Name: fmt.Sprintf("a-1 is divisible by every prime factor of m %v", factors), Passed: primesOK},
		},
	}
	if p.M%4 == 0 {
		r.Conditions = append(r.Conditions, Check{Name: "4 divides m, so 4 must divide a-1", Passed: divides(4)})
	}

	r.FullPeriod = true
	for _, c := range r.Conditions {
		r.FullPeriod = r.FullPeriod && c.Passed
	}
	return r
}

// PrimeFactors returns the distinct prime factors of n in ascending order.
func PrimeFactors(n uint64) []uint64 {
	var fs []uint64
	if n < 2 {
		return fs
	}
	for _, p := range []uint64{2, 3} {
		if n%p == 0 {
			fs = append(fs, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	// 6k +- 1 wheel; d <= n/d avoids overflowing d*d.
	for d := uint64(5); d <= n/d; d += 6 {
		for _, p := range []uint64{d, d + 2} {
			if n%p == 0 {
				fs = append(fs, p)
				for n%p == 0 {
					n /= p
				}
			}
		}
	}
	if n > 1 {
		fs = append(fs, n)
	}
	return fs
}
