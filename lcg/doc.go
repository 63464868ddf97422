// Package lcg generates linear congruential sequences X(n+1) = (a*X(n) + c) mod m
// with cycle detection and reports period, coverage and full-period diagnostics.
//
// Every function is pure; callers own the returned slices.
package lcg
