// Package counter tracks how many animation frames a stream session has sent.
package counter

// Counter is a cumulative frame metric
type Counter interface {
	// Value is the total added so far.
	Value() int64
	// RatePerSec is the increase per second over the last sampling period.
	RatePerSec() float64

	Add(n int64)
}
