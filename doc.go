// Package bitradix converts non-negative integers between power-of-two bases.
//
// Conversion never does arithmetic on the whole number. Every source digit
// is expanded into a fixed-width binary field, the fields are concatenated,
// and the bit string is cut into fields sized for the destination base:
//
//	17 in base 8   ->  001 111  ->  0 0 1 1 1 1  ->  "001111" in base 2
//	1111 in base 2 ->  1111     ->  001 111      ->  "17" in base 8
//
// Supported bases are 2, 4, 8, 16 and 32. Destination digits are rendered
// as 0-9 followed by A-V.
//
// # Quick Start
//
//	out, err := bitradix.Convert(1111, 2, 8) // "17"
//	if errors.Is(err, bitradix.ErrInvalidDigit) {
//	    // a digit of the input is not legal in the source base
//	}
//
// Convert reads the decimal rendering of an int64 digit by digit, so it can
// only express source digits 0-9. ConvertDigits takes a string and accepts
// letters as well:
//
//	out, _ := bitradix.ConvertDigits("1F", 16, 2) // "00011111"
//
// # Padding
//
// When the expansion does not split evenly into destination chunks, the
// Padding option decides what happens:
//
//	bitradix.New(bitradix.WithPadding(bitradix.PadLeft))  // "17" (default)
//	bitradix.New(bitradix.WithPadding(bitradix.PadRight)) // "74"
//	bitradix.New(bitradix.WithPadding(bitradix.PadNone))  // ErrUnalignedChunk
//
// # Batches
//
// ConvertBatch fans requests out over a bounded set of workers:
//
//	c := bitradix.New(bitradix.WithMaxWorkers(4), bitradix.WithRateLimit(10_000))
//	res, err := c.ConvertBatch(ctx, []bitradix.Request{
//	    {Number: 17, From: 8, To: 2},
//	    {Number: 87, From: 8, To: 2},
//	})
//	// res.Failed contains 1
package bitradix
