// Package rational implements an exact fraction value type over signed
// integer base types. A Rational is always kept fully reduced, always
// indicates sign on the numerator only, and always represents zero as 0/1:
// for example 2/-8 is stored as -1/4 and 0/-128 as 0/1. Intermediate
// calculations run on widened 64-bit magnitudes (see wide.go).
package rational

import (
	"golang.org/x/exp/constraints"
)

// Rational is an exact fraction numerator/denominator over the signed
// integral base type T. It is a flat value: copying it copies the value,
// and comparing two of them with == compares the values (both are stored
// in canonical form).
//
// The den field holds the denominator minus one so that the zero value
// Rational[T]{} is the canonical zero 0/1 and is ready to use.
type Rational[T constraints.Signed] struct {
	num T
	den T
}

// New returns the canonical form of numerator/denominator.
// It panics with ErrZeroDenominator when denominator is 0, and with
// ErrOverflow when the canonical form does not fit T (only possible for
// numerator or denominator at T's most negative value).
func New[T constraints.Signed](numerator, denominator T) Rational[T] {
	var r Rational[T]
	r.Set(numerator, denominator)
	return r
}

// FromInt returns the rational n/1.
func FromInt[T constraints.Signed](n T) Rational[T] {
	return Rational[T]{num: n}
}

// Convert copies r into a Rational over the base type U. The numerator and
// denominator pass through a plain numeric conversion and are not
// renormalized: r is already canonical, and the caller guarantees that U can
// represent both fields without truncation.
func Convert[U, T constraints.Signed](r Rational[T]) Rational[U] {
	return Rational[U]{num: U(r.num), den: U(r.den)}
}

// Set replaces r with the canonical form of numerator/denominator and
// returns r for chaining. Same failure behavior as New.
func (r *Rational[T]) Set(numerator, denominator T) *Rational[T] {
	q, err := normalize(numerator, denominator)
	if err != nil {
		panic(err)
	}
	*r = q
	return r
}

func (r Rational[T]) Numerator() T { return r.num }

func (r Rational[T]) Denominator() T { return r.den + 1 }

// IsZero reports whether r is the canonical zero.
func (r Rational[T]) IsZero() bool { return r.num == 0 }

// Int returns r truncated toward zero.
func (r Rational[T]) Int() T { return r.num / r.Denominator() }

// Float64 returns the nearest floating-point value to r.
func (r Rational[T]) Float64() float64 {
	return float64(r.num) / float64(r.Denominator())
}

// Inc adds one to r in place and returns r.
func (r *Rational[T]) Inc() *Rational[T] {
	return r.AddAssign(FromInt[T](1))
}

// Dec subtracts one from r in place and returns r.
func (r *Rational[T]) Dec() *Rational[T] {
	return r.SubAssign(FromInt[T](1))
}

// PostInc adds one to r in place and returns the value r held before.
func (r *Rational[T]) PostInc() Rational[T] {
	prev := *r
	r.Inc()
	return prev
}

// PostDec subtracts one from r in place and returns the value r held before.
func (r *Rational[T]) PostDec() Rational[T] {
	prev := *r
	r.Dec()
	return prev
}

// normalize reduces numerator/denominator to canonical form. The work runs
// on sign and uint64 magnitude so the Euclidean reduction never sees a
// negative operand and T's most negative value holds no surprises.
func normalize[T constraints.Signed](numerator, denominator T) (Rational[T], error) {
	if denominator == 0 {
		return Rational[T]{}, ErrZeroDenominator
	}

	sign, num := split(numerator)
	dsign, den := split(denominator)
	if dsign < 0 {
		sign = -sign
	}
	num, den = reduce(num, den)

	n, err := fit[T](sign, num)
	if err != nil {
		return Rational[T]{}, err
	}
	d, err := fit[T](1, den)
	if err != nil {
		return Rational[T]{}, err
	}
	return Rational[T]{num: n, den: d - 1}, nil
}

// compose is normalize for results the arithmetic core already holds in
// sign/magnitude form. Overflow of T fails fast.
func compose[T constraints.Signed](sign int, num, den uint64) Rational[T] {
	num, den = reduce(num, den)
	n, err := fit[T](sign, num)
	if err != nil {
		panic(err)
	}
	d, err := fit[T](1, den)
	if err != nil {
		panic(err)
	}
	return Rational[T]{num: n, den: d - 1}
}

func (r Rational[T]) parts() (sign int, num, den uint64) {
	sign, num = split(r.num)
	_, den = split(r.den + 1)
	return
}
