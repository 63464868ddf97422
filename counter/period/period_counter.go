package period

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tutils/lcgviz/counter"
)

var _ counter.Counter = &periodCounter{}

type periodCounter struct {
	value  int64
	rate   uint64 // float64 bits
	period time.Duration
	now    func() time.Time

	mut       sync.Mutex
	lastValue int64
	lastTime  time.Time
}

// NewPeriodCounter returns a Counter whose rate is resampled at most once per period.
func NewPeriodCounter(period time.Duration) counter.Counter {
	return newPeriodCounter(period, time.Now)
}

func newPeriodCounter(period time.Duration, now func() time.Time) *periodCounter {
	return &periodCounter{
		period:   period,
		now:      now,
		lastTime: now(),
	}
}

// Value implements Counter.
func (c *periodCounter) Value() int64 {
	return atomic.LoadInt64(&c.value)
}

// RatePerSec implements Counter.
func (c *periodCounter) RatePerSec() float64 {
	return math.Float64frombits(atomic.LoadUint64(&c.rate))
}

// Add implements Counter.
func (c *periodCounter) Add(n int64) {
	atomic.AddInt64(&c.value, n)
	c.sample()
}

func (c *periodCounter) sample() {
	c.mut.Lock()
	defer c.mut.Unlock()

	now := c.now()
	elapsed := now.Sub(c.lastTime)
	if elapsed < c.period || elapsed <= 0 {
		return
	}

	value := c.Value()
	rate := float64(value-c.lastValue) / elapsed.Seconds()
	atomic.StoreUint64(&c.rate, math.Float64bits(rate))
	c.lastValue = value
	c.lastTime = now
}
