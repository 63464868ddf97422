package lcg

import (
	"errors"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestGenerateClassic(t *testing.T) {
	seq, err := Generate(Params{M: 16, A: 5, C: 3, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	want := []uint64{1, 8, 11, 10, 5, 12, 15, 14, 9, 0, 3, 2, 13, 4, 7, 6}
	if !reflect.DeepEqual(seq, want) {
		t.Fatalf("got %v, want %v", seq, want)
	}
}

func TestGenerateCases(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		opts []GenerateOption
		want []uint64
	}{
		{"doubling", Params{M: 16, A: 2, C: 0, Seed: 1}, nil, []uint64{1, 2, 4, 8, 0}},
		{"modulus one", Params{M: 1, A: 7, C: 3, Seed: 0}, nil, []uint64{0, 0}},
		{"fixed point", Params{M: 10, A: 1, C: 0, Seed: 4}, nil, []uint64{4, 4}},
		{"max length one", Params{M: 16, A: 5, C: 3, Seed: 9}, []GenerateOption{WithMaxLength(1)}, []uint64{9}},
		{"max length zero", Params{M: 16, A: 5, C: 3, Seed: 9}, []GenerateOption{WithMaxLength(0)}, []uint64{}},
		{"max length negative", Params{M: 16, A: 5, C: 3, Seed: 9}, []GenerateOption{WithMaxLength(-3)}, []uint64{}},
		{"truncated", Params{M: 16, A: 5, C: 3, Seed: 1}, []GenerateOption{WithMaxLength(4)}, []uint64{1, 8, 11, 10}},
		{"tail into cycle", Params{M: 12, A: 2, C: 1, Seed: 0}, nil, []uint64{0, 1, 3, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Generate(tt.p, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(seq, tt.want) {
				t.Fatalf("got %v, want %v", seq, tt.want)
			}
		})
	}
}

func TestGenerateInvalid(t *testing.T) {
	for _, p := range []Params{
		{M: 0, A: 1, C: 1, Seed: 0},
		{M: 8, A: 1, C: 1, Seed: 8},
		{M: 8, A: 1, C: 1, Seed: 100},
	} {
		if _, err := Generate(p); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%v: expected ErrInvalidParameter, got %v", p, err)
		}
	}
}

func TestGenerateProperties(t *testing.T) {
	for m := uint64(1); m <= 40; m++ {
		for a := uint64(0); a < 12; a++ {
			for c := uint64(0); c < 6; c++ {
				p := Params{M: m, A: a, C: c, Seed: (a + c) % m}
				seq, err := Generate(p)
				if err != nil {
					t.Fatal(err)
				}
				if len(seq) == 0 || len(seq) > int(m)+1 {
					t.Fatalf("%v: length %d outside [1, m+1]", p, len(seq))
				}
				if seq[0] != p.Seed {
					t.Fatalf("%v: first element %d is not the seed", p, seq[0])
				}
				for _, x := range seq {
					if x >= m {
						t.Fatalf("%v: value %d out of range", p, x)
					}
				}
				again, _ := Generate(p)
				if !reflect.DeepEqual(seq, again) {
					t.Fatalf("%v: not deterministic:\n%s", p, spew.Sdump(seq, again))
				}
				one, _ := Generate(p, WithMaxLength(1))
				if !reflect.DeepEqual(one, []uint64{p.Seed}) {
					t.Fatalf("%v: max length 1 gave %v", p, one)
				}
			}
		}
	}
}

func TestGenerateLargeOperands(t *testing.T) {
	// a*x overflows 64 bits; the modulo must still be exact.
	p := Params{M: 1<<63 + 25, A: 1<<62 + 3, C: 1<<63 + 7, Seed: 1<<63 + 1}
	seq, err := Generate(p, WithMaxLength(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != 3 {
		t.Fatalf("expected 3 terms, got %v", seq)
	}
	for _, x := range seq {
		if x >= p.M {
			t.Fatalf("value %d out of range", x)
		}
	}
}

func TestSource(t *testing.T) {
	src, err := NewSource(Params{M: 16, A: 5, C: 3, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	got := []uint64{src.Next(), src.Next(), src.Next()}
	if !reflect.DeepEqual(got, []uint64{1, 8, 11}) {
		t.Fatalf("got %v", got)
	}
	if src.Peek() != 10 {
		t.Fatalf("peek = %d, want 10", src.Peek())
	}
	src.Seed(17)
	if src.Next() != 1 {
		t.Fatal("seed was not reduced mod m")
	}
	if _, err := NewSource(Params{}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestDefaultMaxLength(t *testing.T) {
	if n := DefaultMaxLength(16); n != 17 {
		t.Fatalf("got %d", n)
	}
	if n := DefaultMaxLength(^uint64(0)); n <= 0 {
		t.Fatalf("default max length overflowed: %d", n)
	}
}
