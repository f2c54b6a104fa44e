package rational

// Equal reports whether r and y are the same value. Comparing the fields is
// enough because every Rational is stored in canonical form.
func (r Rational[T]) Equal(y Rational[T]) bool {
	return r == y
}

// EqualInt reports whether r is exactly the integer n.
func (r Rational[T]) EqualInt(n T) bool {
	return r.den == 0 && r.num == n
}

// Cmp returns -1 when r < y, 0 when r == y and 1 when r > y, following the
// sign of the difference.
func (r Rational[T]) Cmp(y Rational[T]) int {
	asign, anum, aden := r.parts()
	bsign, bnum, bden := y.parts()
	if asign != bsign {
		if asign < bsign {
			return -1
		}
		return 1
	}
	g := gcd64(aden, bden)
	p := mul64(anum, bden/g)
	q := mul64(bnum, aden/g)
	switch {
	case p == q:
		return 0
	case (p < q) == (asign >= 0):
		return -1
	default:
		return 1
	}
}

// CmpInt compares r against the integer n the way Cmp does.
func (r Rational[T]) CmpInt(n T) int {
	return r.Cmp(FromInt(n))
}

func (r Rational[T]) Less(y Rational[T]) bool { return r.Cmp(y) < 0 }

func (r Rational[T]) LessEq(y Rational[T]) bool { return r.Cmp(y) <= 0 }

func (r Rational[T]) Greater(y Rational[T]) bool { return r.Cmp(y) > 0 }

func (r Rational[T]) GreaterEq(y Rational[T]) bool { return r.Cmp(y) >= 0 }

// Sign returns -1, 0 or 1 after the sign of r.
func (r Rational[T]) Sign() int {
	if r.num > 0 {
		return 1
	} else if r.num < 0 {
		return -1
	}
	return 0
}
