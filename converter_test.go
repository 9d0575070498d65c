package bitradix

import (
	"bytes"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitradix/testutil"
)

var powerOfTwoBases = []int{2, 4, 8, 16, 32}

func TestIsPermitted(t *testing.T) {
	tests := []struct {
		number int64
		base   int
		want   bool
	}{
		{number: 0, base: 2, want: true},
		{number: 1111, base: 2, want: true},
		{number: 1211, base: 2, want: false},
		{number: 17, base: 8, want: true},
		{number: 87, base: 8, want: false},
		{number: 8, base: 8, want: false},
		{number: 8, base: 10, want: true},
		{number: 9876543210, base: 16, want: true},
		{number: math.MaxInt64, base: 10, want: true},
		{number: -1, base: 16, want: false},
		{number: 5, base: 0, want: false},
		{number: 0, base: -4, want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPermitted(tt.number, tt.base), "number=%d base=%d", tt.number, tt.base)
		assert.Equal(t, tt.want, New().IsPermitted(tt.number, tt.base), "number=%d base=%d", tt.number, tt.base)
	}
}

func TestIsPermittedMatchesDecimalCharacters(t *testing.T) {
	for _, base := range []int{1, 2, 3, 4, 8, 10} {
		for n := int64(0); n < 2000; n++ {
			want := true
			for _, c := range strconv.FormatInt(n, 10) {
				if int(c-'0') >= base {
					want = false
				}
			}
			require.Equal(t, want, IsPermitted(n, base), "number=%d base=%d", n, base)
		}
	}
}

func TestIsPermittedDigits(t *testing.T) {
	assert.True(t, IsPermittedDigits("1F", 16))
	assert.True(t, IsPermittedDigits("1f", 16))
	assert.True(t, IsPermittedDigits("V", 32))
	assert.False(t, IsPermittedDigits("G", 16))
	assert.False(t, IsPermittedDigits("", 16))
	assert.False(t, IsPermittedDigits("-1", 16))
	assert.False(t, IsPermittedDigits("1 2", 16))
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		number int64
		from   int
		to     int
		want   string
	}{
		{name: "binary to octal", number: 1111, from: 2, to: 8, want: "17"},
		{name: "octal to binary", number: 17, from: 8, to: 2, want: "001111"},
		{name: "octal to hex", number: 17, from: 8, to: 16, want: "0F"},
		{name: "hex to binary", number: 87, from: 16, to: 2, want: "10000111"},
		{name: "hex digit eight", number: 8, from: 16, to: 2, want: "1000"},
		{name: "quaternary to hex", number: 31, from: 4, to: 16, want: "D"},
		{name: "binary to base32", number: 11111, from: 2, to: 32, want: "V"},
		{name: "binary to hex letters", number: 10101011, from: 2, to: 16, want: "AB"},
		{name: "octal to base32", number: 777, from: 8, to: 32, want: "FV"},
		{name: "single digit", number: 1, from: 2, to: 16, want: "1"},
		{name: "zero", number: 0, from: 16, to: 2, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.number, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	t.Run("InvalidDigit", func(t *testing.T) {
		_, err := Convert(87, 8, 2)
		require.ErrorIs(t, err, ErrInvalidDigit)

		var de *DigitError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, byte('8'), de.Digit)
		assert.Equal(t, 0, de.Position)
		assert.Equal(t, 8, de.Base)
	})

	t.Run("InvalidDigitPosition", func(t *testing.T) {
		_, err := Convert(10121, 2, 8)
		var de *DigitError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, byte('2'), de.Digit)
		assert.Equal(t, 3, de.Position)
	})

	t.Run("SourceBaseNotPowerOfTwo", func(t *testing.T) {
		_, err := Convert(8, 10, 2)
		require.ErrorIs(t, err, ErrInvalidBase)

		var be *BaseError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, 10, be.Base)
		assert.Equal(t, "source", be.Role)
	})

	t.Run("DestinationBaseNotPowerOfTwo", func(t *testing.T) {
		_, err := Convert(1, 2, 12)
		var be *BaseError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, "destination", be.Role)
	})

	t.Run("BaseOutOfRange", func(t *testing.T) {
		for _, base := range []int{-2, 0, 1, 64} {
			_, err := Convert(1, base, 2)
			assert.ErrorIs(t, err, ErrInvalidBase, "base=%d", base)
			_, err = Convert(1, 2, base)
			assert.ErrorIs(t, err, ErrInvalidBase, "base=%d", base)
		}
	})

	t.Run("BaseCheckedBeforeDigits", func(t *testing.T) {
		_, err := Convert(99, 10, 2)
		assert.ErrorIs(t, err, ErrInvalidBase)
		assert.NotErrorIs(t, err, ErrInvalidDigit)
	})

	t.Run("NegativeNumber", func(t *testing.T) {
		out, err := Convert(-5, 8, 2)
		assert.ErrorIs(t, err, ErrNegativeNumber)
		assert.Empty(t, out)

		_, err = Convert(math.MinInt64, 8, 2)
		assert.ErrorIs(t, err, ErrNegativeNumber)
	})

	t.Run("NoPartialOutput", func(t *testing.T) {
		out, err := Convert(1119, 2, 8)
		require.Error(t, err)
		assert.Empty(t, out)
	})
}

func TestConvertPadding(t *testing.T) {
	t.Run("Left", func(t *testing.T) {
		got, err := New(WithPadding(PadLeft)).Convert(1111, 2, 8)
		require.NoError(t, err)
		assert.Equal(t, "17", got)
	})

	t.Run("Right", func(t *testing.T) {
		got, err := New(WithPadding(PadRight)).Convert(1111, 2, 8)
		require.NoError(t, err)
		assert.Equal(t, "74", got)
	})

	t.Run("None", func(t *testing.T) {
		c := New(WithPadding(PadNone))
		_, err := c.Convert(1111, 2, 8)
		require.ErrorIs(t, err, ErrUnalignedChunk)

		var ae *AlignmentError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, uint(4), ae.Bits)
		assert.Equal(t, uint(3), ae.Width)

		got, err := c.Convert(111111, 2, 8)
		require.NoError(t, err)
		assert.Equal(t, "77", got)
	})

	t.Run("AlignedIgnoresPolicy", func(t *testing.T) {
		for _, p := range []Padding{PadLeft, PadRight, PadNone} {
			got, err := New(WithPadding(p)).Convert(17, 8, 2)
			require.NoError(t, err)
			assert.Equal(t, "001111", got, "padding=%s", p)
		}
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "left", PadLeft.String())
		assert.Equal(t, "right", PadRight.String())
		assert.Equal(t, "none", PadNone.String())
		assert.Equal(t, "unknown", Padding(42).String())
	})
}

func TestConvertTrimLeadingZeros(t *testing.T) {
	c := New(WithTrimLeadingZeros(true))

	got, err := c.Convert(17, 8, 2)
	require.NoError(t, err)
	assert.Equal(t, "1111", got)

	got, err = c.Convert(0, 32, 2)
	require.NoError(t, err)
	assert.Equal(t, "0", got)
}

func TestConvertProperties(t *testing.T) {
	t.Run("SymbolsAndNonEmpty", func(t *testing.T) {
		for _, from := range powerOfTwoBases {
			for _, to := range powerOfTwoBases {
				for n := int64(0); n < 500; n++ {
					if !IsPermitted(n, from) {
						continue
					}
					got, err := Convert(n, from, to)
					require.NoError(t, err)
					require.NotEmpty(t, got)
					for i := 0; i < len(got); i++ {
						require.Contains(t, "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", string(got[i]))
					}
				}
			}
		}
	})

	t.Run("ValuePreserved", func(t *testing.T) {
		for _, from := range powerOfTwoBases {
			for _, to := range powerOfTwoBases {
				for n := int64(0); n < 500; n++ {
					if !IsPermitted(n, from) {
						continue
					}
					got, err := Convert(n, from, to)
					require.NoError(t, err)

					want, err := strconv.ParseUint(strconv.FormatInt(n, 10), from, 64)
					require.NoError(t, err)
					value, err := strconv.ParseUint(got, to, 64)
					require.NoError(t, err)
					require.Equal(t, want, value, "n=%d from=%d to=%d", n, from, to)
				}
			}
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		for _, base := range powerOfTwoBases {
			for n := int64(0); n < 1000; n++ {
				if !IsPermitted(n, base) {
					continue
				}
				got, err := Convert(n, base, base)
				require.NoError(t, err)
				require.Equal(t, strconv.FormatInt(n, 10), got)
			}
		}
	})

	t.Run("ZeroIsSingleSymbol", func(t *testing.T) {
		for _, from := range powerOfTwoBases {
			for _, to := range powerOfTwoBases {
				got, err := Convert(0, from, to)
				require.NoError(t, err)
				assert.Equal(t, "0", got)
			}
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		c := New(WithTrimLeadingZeros(true))
		for _, from := range powerOfTwoBases {
			for _, to := range powerOfTwoBases {
				for n := int64(1); n < 300; n++ {
					if !IsPermitted(n, from) {
						continue
					}
					there, err := c.Convert(n, from, to)
					require.NoError(t, err)
					back, err := c.ConvertDigits(there, to, from)
					require.NoError(t, err)
					require.Equal(t, strconv.FormatInt(n, 10), back, "n=%d from=%d to=%d", n, from, to)
				}
			}
		}
	})
}

func TestConvertDigits(t *testing.T) {
	t.Run("Letters", func(t *testing.T) {
		got, err := ConvertDigits("1F", 16, 2)
		require.NoError(t, err)
		assert.Equal(t, "00011111", got)

		got, err = ConvertDigits("ff", 16, 8)
		require.NoError(t, err)
		assert.Equal(t, "377", got)

		got, err = ConvertDigits("VV", 32, 16)
		require.NoError(t, err)
		assert.Equal(t, "3FF", got)
	})

	t.Run("WiderThanInt64", func(t *testing.T) {
		digits := strings.Repeat("F", 40)
		got, err := ConvertDigits(digits, 16, 2)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("1", 160), got)
	})

	t.Run("RoundTripModuloLeadingZeros", func(t *testing.T) {
		there, err := ConvertDigits("1F", 16, 8)
		require.NoError(t, err)
		assert.Equal(t, "037", there)

		back, err := ConvertDigits(there, 8, 16)
		require.NoError(t, err)
		assert.Equal(t, "01F", back)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := ConvertDigits("", 16, 2)
		assert.ErrorIs(t, err, ErrInvalidDigit)

		_, err = ConvertDigits("1G", 16, 2)
		var de *DigitError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, byte('G'), de.Digit)
		assert.Equal(t, 1, de.Position)

		_, err = ConvertDigits("-1", 16, 2)
		assert.ErrorIs(t, err, ErrInvalidDigit)

		_, err = ConvertDigits("12", 36, 2)
		assert.ErrorIs(t, err, ErrInvalidBase)
	})
}

func TestConvertRandomized(t *testing.T) {
	rng := testutil.NewRNG(4711)
	c := New(WithTrimLeadingZeros(true))

	t.Run("Numbers", func(t *testing.T) {
		for i := 0; i < 2000; i++ {
			from := powerOfTwoBases[rng.Intn(len(powerOfTwoBases))]
			to := powerOfTwoBases[rng.Intn(len(powerOfTwoBases))]
			n := rng.PermittedNumber(from, 18)

			there, err := c.Convert(n, from, to)
			require.NoError(t, err)
			back, err := c.ConvertDigits(there, to, from)
			require.NoError(t, err)
			require.Equal(t, strconv.FormatInt(n, 10), back, "seed=%d n=%d from=%d to=%d", rng.Seed(), n, from, to)
		}
	})

	t.Run("DigitStrings", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			from := powerOfTwoBases[rng.Intn(len(powerOfTwoBases))]
			to := powerOfTwoBases[rng.Intn(len(powerOfTwoBases))]
			digits := rng.Digits(from, 1+rng.Intn(64))

			there, err := c.ConvertDigits(digits, from, to)
			require.NoError(t, err)
			back, err := c.ConvertDigits(there, to, from)
			require.NoError(t, err)
			require.Equal(t, digits, back, "seed=%d digits=%s from=%d to=%d", rng.Seed(), digits, from, to)
		}
	})
}

func TestExpand(t *testing.T) {
	tests := []struct {
		number int64
		base   int
		want   string
	}{
		{number: 1111, base: 2, want: "1111"},
		{number: 17, base: 8, want: "001111"},
		{number: 87, base: 16, want: "10000111"},
		{number: 0, base: 4, want: "00"},
		{number: 321, base: 32, want: "000110001000001"},
	}

	for _, tt := range tests {
		got, err := Expand(tt.number, tt.base)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "number=%d base=%d", tt.number, tt.base)
	}

	_, err := Expand(87, 8)
	assert.ErrorIs(t, err, ErrInvalidDigit)

	_, err = Expand(1, 10)
	assert.ErrorIs(t, err, ErrInvalidBase)

	_, err = Expand(-1, 2)
	assert.ErrorIs(t, err, ErrNegativeNumber)
}

func TestConverterConcurrentUse(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	c := New(WithMetricsCollector(metrics))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				got, err := c.Convert(17, 8, 2)
				assert.NoError(t, err)
				assert.Equal(t, "001111", got)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(800), metrics.GetStats().ConvertCount)
}

func TestConverterLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := New(WithLogger(logger))

	_, err := c.Convert(17, 8, 2)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "conversion completed")
	assert.Contains(t, buf.String(), "output=001111")

	buf.Reset()
	_, err = c.Convert(87, 8, 2)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "conversion rejected")
	assert.Contains(t, buf.String(), "input=87")
}

func BenchmarkConvert(b *testing.B) {
	c := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Convert(7654321076543210, 8, 16)
	}
}
