package rational

import (
	"golang.org/x/exp/constraints"
)

// AddAssign sets r to r+y and returns r for chaining. The sum
// (y.den*r.num + r.den*y.num) / (r.den*y.den) is computed on widened
// magnitudes over the least common denominator, so intermediates stay as
// small as the operands allow. Panics with ErrOverflow when the canonical
// result does not fit T.
func (r *Rational[T]) AddAssign(y Rational[T]) *Rational[T] {
	*r = addScaled(*r, y, 1)
	return r
}

// SubAssign sets r to r-y and returns r for chaining.
func (r *Rational[T]) SubAssign(y Rational[T]) *Rational[T] {
	*r = addScaled(*r, y, -1)
	return r
}

// MulAssign sets r to r*y and returns r for chaining. Shared factors are
// cancelled crosswise before multiplying, which keeps products representable
// whenever the canonical result is.
func (r *Rational[T]) MulAssign(y Rational[T]) *Rational[T] {
	asign, anum, aden := r.parts()
	bsign, bnum, bden := y.parts()
	g1 := gcd64(anum, bden)
	g2 := gcd64(bnum, aden)
	num := mul64(anum/g1, bnum/g2)
	den := mul64(aden/g2, bden/g1)
	*r = compose[T](asign*bsign, num, den)
	return r
}

// DivAssign sets r to r/y and returns r for chaining. Panics with
// ErrZeroDenominator when y is zero.
func (r *Rational[T]) DivAssign(y Rational[T]) *Rational[T] {
	if y.num == 0 {
		panic(ErrZeroDenominator)
	}
	asign, anum, aden := r.parts()
	bsign, bnum, bden := y.parts()
	g1 := gcd64(anum, bnum)
	g2 := gcd64(bden, aden)
	num := mul64(anum/g1, bden/g2)
	den := mul64(aden/g2, bnum/g1)
	*r = compose[T](asign*bsign, num, den)
	return r
}

// addScaled returns a + dir*b with dir either 1 or -1.
func addScaled[T constraints.Signed](a, b Rational[T], dir int) Rational[T] {
	asign, anum, aden := a.parts()
	bsign, bnum, bden := b.parts()
	g := gcd64(aden, bden)
	den := mul64(aden/g, bden)
	p := mul64(anum, bden/g)
	q := mul64(bnum, aden/g)
	sign, num := addMag(asign, p, bsign*dir, q)
	return compose[T](sign, num, den)
}

// Add returns r+y.
func (r Rational[T]) Add(y Rational[T]) Rational[T] {
	r.AddAssign(y)
	return r
}

// Sub returns r-y.
func (r Rational[T]) Sub(y Rational[T]) Rational[T] {
	r.SubAssign(y)
	return r
}

// Mul returns r*y.
func (r Rational[T]) Mul(y Rational[T]) Rational[T] {
	r.MulAssign(y)
	return r
}

// Div returns r/y. Panics with ErrZeroDenominator when y is zero.
func (r Rational[T]) Div(y Rational[T]) Rational[T] {
	r.DivAssign(y)
	return r
}

// Neg returns -r. Panics with ErrOverflow when the numerator is T's most
// negative value.
func (r Rational[T]) Neg() Rational[T] {
	sign, mag := split(r.num)
	num, err := fit[T](-sign, mag)
	if err != nil {
		panic(err)
	}
	return Rational[T]{num: num, den: r.den}
}

// Abs returns the magnitude of r. Same overflow behavior as Neg.
func (r Rational[T]) Abs() Rational[T] {
	if r.num < 0 {
		return r.Neg()
	}
	return r
}

// AddInt returns r+n.
func (r Rational[T]) AddInt(n T) Rational[T] { return r.Add(FromInt(n)) }

// SubInt returns r-n.
func (r Rational[T]) SubInt(n T) Rational[T] { return r.Sub(FromInt(n)) }

// MulInt returns r*n.
func (r Rational[T]) MulInt(n T) Rational[T] { return r.Mul(FromInt(n)) }

// DivInt returns r/n. Panics with ErrZeroDenominator when n is 0.
func (r Rational[T]) DivInt(n T) Rational[T] { return r.Div(FromInt(n)) }

// IntSub returns n-r, computed as (-r)+n.
func IntSub[T constraints.Signed](n T, r Rational[T]) Rational[T] {
	return r.Neg().AddInt(n)
}

// IntDiv returns n/r. Panics with ErrZeroDenominator when r is zero.
func IntDiv[T constraints.Signed](n T, r Rational[T]) Rational[T] {
	return FromInt(n).Div(r)
}
