package modregex_test

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/coregx/coregex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modregex"
	"github.com/katalvlaran/modregex/eliminate"
)

// TestModRegex_RoundTrip checks, for every n in [0,10000), that the numeral
// of n matches iff n mod divisor == remainder.
func TestModRegex_RoundTrip(t *testing.T) {
	limit := int64(10000)
	if testing.Short() {
		limit = 1000
	}

	for divisor := 3; divisor < 9; divisor++ {
		for _, base := range []int{2, 8, 10, 16} {
			divisor, base := divisor, base
			t.Run(fmt.Sprintf("d%d_b%d", divisor, base), func(t *testing.T) {
				t.Parallel()
				for remainder := 0; remainder < divisor; remainder++ {
					re, err := modregex.Compile(divisor, base, remainder)
					require.NoError(t, err)
					for n := int64(0); n < limit; n++ {
						s := strconv.FormatInt(n, base)
						want := n%int64(divisor) == int64(remainder)
						if re.MatchString(s) != want {
							t.Fatalf("n=%d (%q) remainder=%d: match=%v, want %v\n%s", n, s, remainder, !want, want, re)
						}
					}
				}
			})
		}
	}
}

// TestModRegex_RoundTripCoregex repeats the round trip on a second engine so
// the expressions do not depend on stdlib regexp quirks.
func TestModRegex_RoundTripCoregex(t *testing.T) {
	limit := int64(10000)
	if testing.Short() {
		limit = 1000
	}

	for divisor := 3; divisor < 7; divisor++ {
		for _, base := range []int{2, 8, 10, 16} {
			divisor, base := divisor, base
			t.Run(fmt.Sprintf("d%d_b%d", divisor, base), func(t *testing.T) {
				t.Parallel()
				for remainder := 0; remainder < divisor; remainder++ {
					expr, err := modregex.ModRegex(divisor, base, remainder)
					require.NoError(t, err)
					re, err := coregex.Compile(expr)
					require.NoError(t, err)
					for n := int64(0); n < limit; n++ {
						s := strconv.FormatInt(n, base)
						if want := n%int64(divisor) == int64(remainder); re.MatchString(s) != want {
							t.Fatalf("n=%d (%q) remainder=%d: match=%v, want %v", n, s, remainder, !want, want)
						}
					}
				}
			})
		}
	}
}

func TestModRegex_Scenarios(t *testing.T) {
	even, err := modregex.Compile(2, 10, 0)
	require.NoError(t, err)
	for _, s := range []string{"10", "24", "0"} {
		assert.True(t, even.MatchString(s), s)
	}
	for _, s := range []string{"7", "123"} {
		assert.False(t, even.MatchString(s), s)
	}

	bin, err := modregex.Compile(3, 2, 1)
	require.NoError(t, err)
	for _, s := range []string{"1", "100", "111"} {
		assert.True(t, bin.MatchString(s), s)
	}
	for _, s := range []string{"0", "11"} {
		assert.False(t, bin.MatchString(s), s)
	}
}

func TestModRegex_Anchored(t *testing.T) {
	for divisor := 1; divisor < 7; divisor++ {
		for _, base := range []int{0, 2, 3, 10, 16} {
			for remainder := 0; remainder < divisor; remainder++ {
				expr, err := modregex.ModRegex(divisor, base, remainder)
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(expr, "^"), expr)
				assert.True(t, strings.HasSuffix(expr, "$"), expr)
			}
		}
	}
}

func TestModRegex_ZeroBase(t *testing.T) {
	expr, err := modregex.ModRegex(3, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "^(0{3})*$", expr)

	re := regexp.MustCompile(expr)
	for k := 0; k <= 10; k++ {
		assert.Equal(t, k%3 == 0, re.MatchString(strings.Repeat("0", k)), "zeros=%d", k)
	}
	assert.False(t, re.MatchString("1"))

	expr, err = modregex.ModRegex(4, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, "^0{3}(0{4})*$", expr)

	re = regexp.MustCompile(expr)
	for k := 0; k <= 12; k++ {
		assert.Equal(t, k%4 == 3, re.MatchString(strings.Repeat("0", k)), "zeros=%d", k)
	}
}

func TestModRegex_Validation(t *testing.T) {
	tests := []struct {
		name                     string
		divisor, base, remainder int
		want                     error
	}{
		{"zero divisor", 0, 10, 0, modregex.ErrZeroDivisor},
		{"remainder equals divisor", 3, 10, 3, modregex.ErrRemainderRange},
		{"remainder above divisor", 3, 10, 7, modregex.ErrRemainderRange},
		{"base 17", 3, 17, 0, modregex.ErrBaseRange},
		{"negative divisor", -3, 10, 0, modregex.ErrNegativeInput},
		{"negative base", 3, -10, 0, modregex.ErrNegativeInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := modregex.ModRegex(tc.divisor, tc.base, tc.remainder)
			assert.ErrorIs(t, err, tc.want)
			_, err = modregex.Compile(tc.divisor, tc.base, tc.remainder)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestModRegex_UnaryUnreachable(t *testing.T) {
	expr, err := modregex.ModRegex(3, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "^0*$", expr)

	_, err = modregex.ModRegex(3, 1, 2)
	assert.ErrorIs(t, err, eliminate.ErrUnreachable)
}

func TestModRegex_Deterministic(t *testing.T) {
	first, err := modregex.ModRegex(7, 10, 4)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := modregex.ModRegex(7, 10, 4)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestModRegex_OrderOption(t *testing.T) {
	re, err := modregex.Compile(6, 10, 5, eliminate.WithOrder(eliminate.FurthestFirst))
	require.NoError(t, err)
	for n := int64(0); n < 2000; n++ {
		assert.Equal(t, n%6 == 5, re.MatchString(strconv.FormatInt(n, 10)), "n=%d", n)
	}
}
