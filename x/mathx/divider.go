package mathx

import "golang.org/x/exp/constraints"

// DivFreq returns base/div using integer division. A zero divider yields 0.
func DivFreq[T constraints.Unsigned](base, div T) T {
	if div == 0 {
		return 0
	}
	return base / div
}

// InRange reports 1 <= div <= hi.
func InRange[T constraints.Unsigned](div, hi T) bool {
	return Between(div, 1, hi)
}

// DividerFor returns the smallest divider d >= 1 with base/d <= want, and the
// frequency it achieves. ok is false when want is zero or d exceeds hi.
//
//	base/d <= want  <=>  d > base/(want+1)
func DividerFor[T constraints.Unsigned](base, want, hi T) (div, got T, ok bool) {
	if want == 0 {
		return 0, 0, false
	}
	div = 1
	if want < base {
		div = base/(want+1) + 1
	}
	if div > hi {
		return div, base / div, false
	}
	return div, base / div, true
}
