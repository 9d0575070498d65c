package bitstream

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// MaxFieldWidth is the widest field AppendField and Chunks accept.
const MaxFieldWidth = 64

var (
	// ErrInvalidWidth is returned for a zero or too wide field width.
	ErrInvalidWidth = errors.New("bitstream: invalid field width")

	// ErrUnaligned is returned by Chunks when the stream length is not a
	// multiple of the chunk width.
	ErrUnaligned = errors.New("bitstream: length is not a multiple of chunk width")
)

// ErrFieldOverflow indicates a value that does not fit its field.
type ErrFieldOverflow struct {
	Value uint64
	Width uint
}

func (e *ErrFieldOverflow) Error() string {
	return fmt.Sprintf("bitstream: value %d does not fit in %d bits", e.Value, e.Width)
}

// Stream is an append-only bit sequence. The zero value is not usable; use New.
// A Stream is not safe for concurrent use.
type Stream struct {
	bits *bitset.BitSet
	n    uint
}

// New creates an empty stream with room for capacity bits.
func New(capacity uint) *Stream {
	return &Stream{bits: bitset.New(capacity)}
}

// Len returns the number of bits in the stream.
func (s *Stream) Len() uint {
	return s.n
}

// AppendZeros appends n zero bits.
func (s *Stream) AppendZeros(n uint) {
	s.n += n
}

// AppendField appends v as a width-bit field, most significant bit first.
func (s *Stream) AppendField(v uint64, width uint) error {
	if width == 0 || width > MaxFieldWidth {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if width < MaxFieldWidth && v>>width != 0 {
		return &ErrFieldOverflow{Value: v, Width: width}
	}

	for j := width; j > 0; j-- {
		if v>>(j-1)&1 == 1 {
			s.bits.Set(s.n)
		}
		s.n++
	}
	return nil
}

// Test reports whether bit i is set. Bits past Len are never set.
func (s *Stream) Test(i uint) bool {
	return i < s.n && s.bits.Test(i)
}

// Chunks splits the stream into consecutive width-bit values, first chunk
// first. The stream length must be a multiple of width.
func (s *Stream) Chunks(width uint) ([]uint64, error) {
	if width == 0 || width > MaxFieldWidth {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if s.n%width != 0 {
		return nil, fmt.Errorf("%w: %d bits, width %d", ErrUnaligned, s.n, width)
	}

	chunks := make([]uint64, 0, s.n/width)
	for off := uint(0); off < s.n; off += width {
		var v uint64
		for j := uint(0); j < width; j++ {
			v <<= 1
			if s.bits.Test(off + j) {
				v |= 1
			}
		}
		chunks = append(chunks, v)
	}
	return chunks, nil
}

// String renders the stream as a string of '0' and '1'.
func (s *Stream) String() string {
	var sb strings.Builder
	sb.Grow(int(s.n))
	for i := uint(0); i < s.n; i++ {
		if s.bits.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Pad returns the number of zero bits needed to round n up to a multiple of width.
func Pad(n, width uint) uint {
	if width == 0 {
		return 0
	}
	return (width - n%width) % width
}
