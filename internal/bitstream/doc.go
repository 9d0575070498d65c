// Package bitstream implements an append-only, MSB-first bit sequence.
//
// A Stream is filled with fixed-width fields and zero padding and then read
// back as fixed-width chunks. Bit 0 is the most significant bit of the
// sequence, so chunk order equals digit order.
//
//	s := bitstream.New(8)
//	_ = s.AppendField(5, 3) // 101
//	_ = s.AppendField(1, 3) // 001
//	s.AppendZeros(bitstream.Pad(s.Len(), 4))
//	chunks, _ := s.Chunks(4) // 1010 0100 -> [10 4]
//
// Storage is a github.com/bits-and-blooms/bitset.BitSet.
package bitstream
