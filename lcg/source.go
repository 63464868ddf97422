package lcg

// Source steps a single LCG. It is not safe for concurrent use.
type Source struct {
	p     Params
	state uint64
}

// NewSource returns a Source positioned at p.Seed.
func NewSource(p Params) (*Source, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Source{p: p, state: p.Seed}, nil
}

// Params returns the parameters the source was created with.
func (s *Source) Params() Params {
	return s.p
}

// Seed repositions the source. The value is reduced mod m.
func (s *Source) Seed(seed uint64) {
	s.state = seed % s.p.M
}

// Peek returns the value the next call to Next will return.
func (s *Source) Peek() uint64 {
	return s.state
}

// Next returns the current value and advances the recurrence.
func (s *Source) Next() uint64 {
	x := s.state
	s.state = s.p.next(x)
	return x
}
