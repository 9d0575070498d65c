package conv

import (
	"math/bits"
)

const (
	// Alphabet lists the digit symbols in value order.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// MinBase is the smallest supported base.
	MinBase = 2

	// MaxBase is the largest power of two whose digits fit in Alphabet.
	MaxBase = 32
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// BitWidth returns log2(base) and true for supported bases.
// It returns false when base is not a power of two in [MinBase, MaxBase].
func BitWidth(base int) (uint, bool) {
	if base < MinBase || base > MaxBase || !IsPowerOfTwo(base) {
		return 0, false
	}
	return uint(bits.TrailingZeros(uint(base))), true
}

// DigitValue returns the value of a single symbol.
// Letters are accepted in either case. It returns -1 for anything else.
func DigitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// DecimalValue returns the value of a decimal digit character, or -1.
func DecimalValue(c byte) int {
	if c < '0' || c > '9' {
		return -1
	}
	return int(c - '0')
}

// Symbol renders v as its digit symbol: 0-9, then A, B, ...
// The second result is false when v has no symbol.
func Symbol(v uint64) (byte, bool) {
	if v >= uint64(len(Alphabet)) {
		return 0, false
	}
	return Alphabet[v], true
}
