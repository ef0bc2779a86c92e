package torsor

import "cmp"

// Equal reports whether t and u are the same position. It agrees with ==,
// including for NaN.
func (t Torsor[R, U]) Equal(u Torsor[R, U]) bool {
	return t.v == u.v
}

// Less reports whether a lies before b.
func Less[R Real, U Universe](a, b Torsor[R, U]) bool {
	return a.v < b.v
}

func LessEqual[R Real, U Universe](a, b Torsor[R, U]) bool {
	return a.v <= b.v
}

func Greater[R Real, U Universe](a, b Torsor[R, U]) bool {
	return a.v > b.v
}

func GreaterEqual[R Real, U Universe](a, b Torsor[R, U]) bool {
	return a.v >= b.v
}

// Compare returns -1, 0 or +1 following [cmp.Compare], so it can be passed
// straight to slices.SortFunc.
func Compare[R Real, U Universe](a, b Torsor[R, U]) int {
	return cmp.Compare(a.v, b.v)
}

// Min returns the earliest of the given positions.
func Min[R Real, U Universe](first Torsor[R, U], rest ...Torsor[R, U]) Torsor[R, U] {
	m := first
	for _, t := range rest {
		if t.v < m.v {
			m = t
		}
	}
	return m
}

// Max returns the latest of the given positions.
func Max[R Real, U Universe](first Torsor[R, U], rest ...Torsor[R, U]) Torsor[R, U] {
	m := first
	for _, t := range rest {
		if t.v > m.v {
			m = t
		}
	}
	return m
}
