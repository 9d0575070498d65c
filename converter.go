package bitradix

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hupe1980/bitradix/internal/bitstream"
	"github.com/hupe1980/bitradix/internal/conv"
	"github.com/hupe1980/bitradix/internal/resource"
)

// Converter converts numbers between power-of-two bases.
//
// A Converter is immutable after New and safe for concurrent use.
type Converter struct {
	padding Padding
	trim    bool
	metrics MetricsCollector
	logger  *Logger
	rc      *resource.Controller
}

// New creates a Converter.
func New(optFns ...Option) *Converter {
	o := applyOptions(optFns)

	return &Converter{
		padding: o.padding,
		trim:    o.trimLeadingZeros,
		metrics: o.metricsCollector,
		logger:  o.logger,
		rc: resource.NewController(resource.Config{
			MaxWorkers:        o.maxWorkers,
			ConversionsPerSec: o.conversionsPerSec,
		}),
	}
}

var defaultConverter = New()

// IsPermitted reports whether every character of the decimal representation
// of number, read as a decimal digit, is less than base.
//
// The check works on decimal characters, not on a real base parse: 87 is
// rejected for base 8 because of the character '8'. Negative numbers are
// always rejected.
func IsPermitted(number int64, base int) bool {
	if number < 0 {
		return false
	}
	_, err := parseDigits(strconv.FormatInt(number, 10), base, conv.DecimalValue)
	return err == nil
}

// IsPermittedDigits reports whether digits is a non-empty string of symbols
// (0-9, A-Z in either case) whose values are all less than base.
func IsPermittedDigits(digits string, base int) bool {
	_, err := parseDigits(digits, base, conv.DigitValue)
	return err == nil
}

// Convert converts number from base1 to base2 using the default Converter.
func Convert(number int64, base1, base2 int) (string, error) {
	return defaultConverter.Convert(number, base1, base2)
}

// ConvertDigits converts a digit string from base1 to base2 using the default Converter.
func ConvertDigits(digits string, base1, base2 int) (string, error) {
	return defaultConverter.ConvertDigits(digits, base1, base2)
}

// Expand returns the binary expansion of number read in base using the default Converter.
func Expand(number int64, base int) (string, error) {
	return defaultConverter.Expand(number, base)
}

// IsPermitted is the method form of the package-level IsPermitted.
func (c *Converter) IsPermitted(number int64, base int) bool {
	return IsPermitted(number, base)
}

// Convert reads the decimal digits of number as digits in base1 and returns
// the same bit pattern written in base2.
//
// Each digit becomes a log2(base1)-bit field, most significant digit first.
// The bits are regrouped into log2(base2)-bit chunks and every chunk is
// rendered as one symbol (0-9, then A-Z). Alignment of a short chunk follows
// the configured Padding.
//
//	Convert(17, 8, 2)   // "001111"
//	Convert(1111, 2, 8) // "17"
//	Convert(87, 8, 2)   // ErrInvalidDigit
//	Convert(8, 10, 2)   // ErrInvalidBase
//
// A result made only of zeros is returned as "0".
func (c *Converter) Convert(number int64, base1, base2 int) (string, error) {
	start := time.Now()
	input := strconv.FormatInt(number, 10)

	var (
		out string
		err error
	)
	if number < 0 {
		err = fmt.Errorf("%w: %d", ErrNegativeNumber, number)
	} else {
		out, err = c.convert(input, conv.DecimalValue, base1, base2)
	}

	c.metrics.RecordConvert(time.Since(start), err)
	c.logger.LogConvert(input, base1, base2, out, err)
	return out, err
}

// ConvertDigits is Convert for a digit string. Symbols 0-9 and A-Z (either
// case) are accepted, so the output of one conversion can be fed back into
// another and inputs are not limited to int64.
func (c *Converter) ConvertDigits(digits string, base1, base2 int) (string, error) {
	start := time.Now()
	out, err := c.convert(digits, conv.DigitValue, base1, base2)
	c.metrics.RecordConvert(time.Since(start), err)
	c.logger.LogConvert(digits, base1, base2, out, err)
	return out, err
}

// Expand returns the binary expansion of number read in base as a string of
// '0' and '1', log2(base) bits per digit, without any padding.
func (c *Converter) Expand(number int64, base int) (string, error) {
	if number < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeNumber, number)
	}
	width, ok := conv.BitWidth(base)
	if !ok {
		return "", &BaseError{Base: base, Role: "source"}
	}
	values, err := parseDigits(strconv.FormatInt(number, 10), base, conv.DecimalValue)
	if err != nil {
		return "", err
	}

	s := bitstream.New(uint(len(values)) * width)
	for _, v := range values {
		if err := s.AppendField(v, width); err != nil {
			return "", err
		}
	}
	return s.String(), nil
}

func (c *Converter) convert(digits string, valueOf func(byte) int, base1, base2 int) (string, error) {
	w1, ok := conv.BitWidth(base1)
	if !ok {
		return "", &BaseError{Base: base1, Role: "source"}
	}
	w2, ok := conv.BitWidth(base2)
	if !ok {
		return "", &BaseError{Base: base2, Role: "destination"}
	}

	values, err := parseDigits(digits, base1, valueOf)
	if err != nil {
		return "", err
	}

	n := uint(len(values)) * w1
	pad := bitstream.Pad(n, w2)

	s := bitstream.New(n + pad)
	if c.padding == PadLeft {
		s.AppendZeros(pad)
	}
	for _, v := range values {
		if err := s.AppendField(v, w1); err != nil {
			return "", err
		}
	}
	if c.padding == PadRight {
		s.AppendZeros(pad)
	}

	chunks, err := s.Chunks(w2)
	if err != nil {
		return "", &AlignmentError{Bits: n, Width: w2, cause: err}
	}

	return c.render(chunks)
}

func (c *Converter) render(chunks []uint64) (string, error) {
	buf := make([]byte, len(chunks))
	for i, v := range chunks {
		sym, ok := conv.Symbol(v)
		if !ok {
			return "", fmt.Errorf("chunk %d: value %d has no symbol", i, v)
		}
		buf[i] = sym
	}

	out := string(buf)
	trimmed := strings.TrimLeft(out, "0")
	if trimmed == "" {
		return "0", nil
	}
	if c.trim {
		return trimmed, nil
	}
	return out, nil
}

// parseDigits maps each character of digits to its value and checks it
// against base, most significant first.
func parseDigits(digits string, base int, valueOf func(byte) int) ([]uint64, error) {
	if digits == "" {
		return nil, &DigitError{Base: base}
	}

	values := make([]uint64, len(digits))
	for i := 0; i < len(digits); i++ {
		v := valueOf(digits[i])
		if v < 0 || v >= base {
			return nil, &DigitError{Digit: digits[i], Position: i, Base: base}
		}
		values[i] = uint64(v)
	}
	return values, nil
}
