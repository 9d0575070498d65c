// Package testutil provides testing utilities for bitradix.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for numbers and
// digit strings that are legal in a given base.
//
//	rng := testutil.NewRNG(seed)
//	n := rng.PermittedNumber(8, 12) // up to 12 decimal digits, each < 8
//	s := rng.Digits(16, 40)         // 40 symbols from 0-9A-F
package testutil
