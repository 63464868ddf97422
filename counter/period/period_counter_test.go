package period

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func TestPeriodCounterRate(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	c := newPeriodCounter(time.Second, clk.now)

	c.Add(4)
	if c.RatePerSec() != 0 {
		t.Fatalf("rate sampled before a full period: %v", c.RatePerSec())
	}

	clk.t = clk.t.Add(2 * time.Second)
	c.Add(6)
	if c.Value() != 10 {
		t.Fatalf("value = %d", c.Value())
	}
	if c.RatePerSec() != 5 {
		t.Fatalf("rate = %v, want 5", c.RatePerSec())
	}

	clk.t = clk.t.Add(500 * time.Millisecond)
	c.Add(100)
	if c.RatePerSec() != 5 {
		t.Fatalf("rate resampled within a period: %v", c.RatePerSec())
	}
}

func TestPeriodCounterConcurrent(t *testing.T) {
	c := NewPeriodCounter(time.Millisecond)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()
	if c.Value() != 8000 {
		t.Fatalf("value = %d", c.Value())
	}
}
