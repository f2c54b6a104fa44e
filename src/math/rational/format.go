package rational

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

// String renders r as "N/D".
func (r Rational[T]) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator(), r.Denominator())
}

// Parse converts the textual form of a rational, i.e. "2/3", into its
// canonical Rational. The two integer tokens may be separated by any single
// character, not just '/', matching Scan. A zero denominator or a token out
// of T's range is reported as an error, never a panic.
func Parse[T constraints.Signed](s string) (Rational[T], error) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	if i == len(s) {
		return Rational[T]{}, fmt.Errorf("rational: %q should be like \"1/3\"", s)
	}
	numerator, err := parseBase[T](s[:i])
	if err != nil {
		return Rational[T]{}, fmt.Errorf("rational: numerator of %q: %w", s, err)
	}
	_, w := utf8.DecodeRuneInString(s[i:])
	denominator, err := parseBase[T](s[i+w:])
	if err != nil {
		return Rational[T]{}, fmt.Errorf("rational: denominator of %q: %w", s, err)
	}
	q, err := normalize(numerator, denominator)
	if err != nil {
		return Rational[T]{}, fmt.Errorf("rational: %q: %w", s, err)
	}
	return q, nil
}

func parseBase[T constraints.Signed](s string) (T, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return narrow[T](v)
}

// MarshalText implements encoding.TextMarshaler using the "N/D" form.
func (r Rational[T]) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver is left
// untouched when the text does not parse.
func (r *Rational[T]) UnmarshalText(text []byte) error {
	q, err := Parse[T](string(text))
	if err != nil {
		return err
	}
	*r = q
	return nil
}

// Scan implements fmt.Scanner: it reads one integer token, skips a single
// separator rune without validating it, reads a second integer token and
// sets the receiver to their canonical form. On any failure the receiver is
// reset to the canonical zero and the error surfaces through the scanning
// call (fmt.Fscan and friends).
func (r *Rational[T]) Scan(state fmt.ScanState, verb rune) error {
	numerator, err := scanBase[T](state)
	if err == nil {
		_, _, err = state.ReadRune()
	}
	var denominator T
	if err == nil {
		denominator, err = scanBase[T](state)
	}
	if err == nil {
		var q Rational[T]
		if q, err = normalize(numerator, denominator); err == nil {
			*r = q
			return nil
		}
	}
	*r = Rational[T]{}
	return err
}

// scanBase reads one base-typed integer token: an optional sign rune
// followed by decimal digits, with leading space skipped.
func scanBase[T constraints.Signed](state fmt.ScanState) (T, error) {
	leading := true
	tok, err := state.Token(true, func(c rune) bool {
		sign := leading && (c == '-' || c == '+')
		leading = false
		return sign || ('0' <= c && c <= '9')
	})
	if err != nil {
		return 0, err
	}
	return parseBase[T](string(tok))
}
