package testutil

import (
	"math/rand"
	"strconv"
	"sync"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// maxInt64Digits is the number of decimal digits that always fit in an int64.
const maxInt64Digits = 18

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Digits returns a string of length symbols, each with a value below base.
// The first symbol is never '0' unless length is 1. base is capped at 36.
func (r *RNG) Digits(base, length int) string {
	if length <= 0 {
		return ""
	}
	base = min(max(base, 1), len(alphabet))

	r.mu.Lock()
	defer r.mu.Unlock()

	buf := make([]byte, length)
	for i := range buf {
		if i == 0 && length > 1 && base > 1 {
			buf[i] = alphabet[1+r.rand.Intn(base-1)]
			continue
		}
		buf[i] = alphabet[r.rand.Intn(base)]
	}
	return string(buf)
}

// PermittedNumber returns a non-negative int64 whose decimal digits are all
// below base, with between 1 and maxDigits digits. maxDigits is capped at 18.
func (r *RNG) PermittedNumber(base, maxDigits int) int64 {
	maxDigits = min(max(maxDigits, 1), maxInt64Digits)
	length := 1 + r.Intn(maxDigits)

	n, err := strconv.ParseInt(r.Digits(min(base, 10), length), 10, 64)
	if err != nil {
		panic(err) // unreachable: at most 18 decimal digits
	}
	return n
}
