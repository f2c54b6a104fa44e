package rational

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	require.Equal(t, "1/2", New(1, 2).String())
	require.Equal(t, "-1/4", New(2, -8).String())
	require.Equal(t, "0/1", Rational[int8]{}.String())
	require.Equal(t, "-3/1", New(9, -3).String())
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in  string
		exp Rational[int64]
		err bool
	}{
		{in: "2/3", exp: r64(2, 3)},
		{in: "15/5", exp: r64(3, 1)},
		{in: "-1/2", exp: r64(-1, 2)},
		{in: "1/-2", exp: r64(-1, 2)},
		{in: "+4/6", exp: r64(2, 3)},
		{in: "0/-128", exp: Rational[int64]{}},
		// the separator is one arbitrary rune, not necessarily '/'
		{in: "1:2", exp: r64(1, 2)},
		{in: "22x7", exp: r64(22, 7)},
		{in: "2/3/4", err: true},
		{in: "123", err: true},
		{in: "1a2/4", err: true},
		{in: "1/3bc4", err: true},
		{in: "/2", err: true},
		{in: "", err: true},
		{in: "1/0", err: true},
	}

	for idx, tc := range testCases {
		output, err := Parse[int64](tc.in)
		if tc.err {
			require.Error(t, err, idx)
		} else {
			require.NoError(t, err, idx)
		}
		require.Equal(t, tc.exp, output, idx)
	}
}

func TestParseErrorValues(t *testing.T) {
	_, err := Parse[int64]("1/0")
	require.ErrorIs(t, err, ErrZeroDenominator)

	_, err = Parse[int8]("300/1")
	require.ErrorIs(t, err, ErrOverflow)

	_, err = Parse[int8]("1/300")
	require.ErrorIs(t, err, ErrOverflow)
}

func TestMarshalText(t *testing.T) {
	text, err := New(-6, 8).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-3/4", string(text))

	var r Rational[int]
	require.NoError(t, r.UnmarshalText(text))
	require.Equal(t, New(-3, 4), r)

	// a bad payload leaves the receiver alone
	require.Error(t, r.UnmarshalText([]byte("what")))
	require.Equal(t, New(-3, 4), r)
}

func TestScan(t *testing.T) {
	var r Rational[int64]
	n, err := fmt.Sscan("22/7", &r)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, r64(22, 7), r)

	// the delimiter rune is skipped, not validated
	_, err = fmt.Sscan("2:-8", &r)
	require.NoError(t, err)
	require.Equal(t, r64(-1, 4), r)

	var a, b Rational[int64]
	n, err = fmt.Fscan(strings.NewReader("1/2 3/4"), &a, &b)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, r64(1, 2), a)
	require.Equal(t, r64(3, 4), b)
}

func TestScanMalformed(t *testing.T) {
	for _, in := range []string{"x/2", "5/", "5", "-/3", "5/y"} {
		r := r64(1, 2)
		_, err := fmt.Sscan(in, &r)
		require.Error(t, err, in)
		require.Equal(t, Rational[int64]{}, r, in)
	}
}

func TestScanZeroDenominator(t *testing.T) {
	r := r64(1, 2)
	_, err := fmt.Sscan("4/0", &r)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrZeroDenominator))
	require.Equal(t, Rational[int64]{}, r)
}

func TestStringParseRoundTripExamples(t *testing.T) {
	for _, tc := range []struct{ num, den int64 }{
		{1, 2}, {2, -8}, {0, -128}, {-3, -9}, {22, 7}, {-355, 113},
	} {
		want := New(tc.num, tc.den)
		got, err := Parse[int64](want.String())
		require.NoError(t, err)
		require.Equal(t, want, got)

		got, err = Parse[int64](fmt.Sprintf("%d/%d", tc.num, tc.den))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}
