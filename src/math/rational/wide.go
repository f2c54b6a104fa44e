package rational

import (
	"errors"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

var (
	// ErrZeroDenominator is the panic value for a zero denominator at
	// construction or Set, and for dividing by a zero-valued Rational.
	ErrZeroDenominator = errors.New("rational: zero denominator")
	// ErrOverflow is the panic value when a result does not fit the base
	// type, or an intermediate product exceeds 64 bits of magnitude.
	ErrOverflow = errors.New("rational: overflow")
)

// split decomposes v into its sign and its magnitude as a uint64. The
// magnitude of T's most negative value is exactly representable.
func split[T constraints.Signed](v T) (sign int, mag uint64) {
	w := int64(v)
	if w > 0 {
		return 1, uint64(w)
	} else if w < 0 {
		return -1, uint64(-(w+1)) + 1
	}
	return 0, 0
}

// fit converts a sign/magnitude pair back into T, failing with ErrOverflow
// when the value is out of T's range.
func fit[T constraints.Signed](sign int, mag uint64) (T, error) {
	if mag == 0 {
		return 0, nil
	}
	var v int64
	if sign < 0 {
		if mag > 1<<63 {
			return 0, ErrOverflow
		}
		v = -int64(mag-1) - 1
	} else {
		if mag > math.MaxInt64 {
			return 0, ErrOverflow
		}
		v = int64(mag)
	}
	return narrow[T](v)
}

// narrow converts v to T, failing with ErrOverflow when T cannot hold it.
func narrow[T constraints.Signed](v int64) (T, error) {
	t := T(v)
	if int64(t) != v {
		return 0, ErrOverflow
	}
	return t, nil
}

// gcd64 is the Euclidean algorithm on magnitudes.
func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// reduce divides num and den by their greatest common divisor and maps a
// zero numerator to the canonical 0/1.
func reduce(num, den uint64) (uint64, uint64) {
	if num == 0 {
		return 0, 1
	}
	g := gcd64(num, den)
	return num / g, den / g
}

// mul64 multiplies two magnitudes, failing fast when the full product needs
// more than 64 bits.
func mul64(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		panic(ErrOverflow)
	}
	return lo
}

func add64(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		panic(ErrOverflow)
	}
	return sum
}

// addMag sums two signed magnitudes.
func addMag(asign int, a uint64, bsign int, b uint64) (int, uint64) {
	switch {
	case asign == 0:
		return bsign, b
	case bsign == 0:
		return asign, a
	case asign == bsign:
		return asign, add64(a, b)
	case a > b:
		return asign, a - b
	case b > a:
		return bsign, b - a
	default:
		return 0, 0
	}
}
