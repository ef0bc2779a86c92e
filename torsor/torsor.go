package torsor

import "golang.org/x/exp/constraints"

// Real is a representation that can be ordered and converted to another
// real width.
type Real interface {
	constraints.Integer | constraints.Float
}

// Number is any representation a Torsor can wrap. It supports + and -
// against itself and comparison for equality.
type Number interface {
	Real | constraints.Complex
}

// Universe tags a family of positions. Tags are zero-size struct types.
type Universe interface {
	~struct{}
}

// Default is the universe used by [Of].
type Default struct{}

// Torsor is a position of representation R in universe U.
//
// The zero value is the anchor. A non-zero position is only reachable by
// displacing an existing one with an offset.
type Torsor[R Number, U Universe] struct {
	// Zero-size fields must precede v; a trailing one pads the struct.
	_ [0]U
	v R
}

// Of is a Torsor in the default universe.
type Of[R Number] = Torsor[R, Default]

// Anchor returns the zero position.
func Anchor[R Number, U Universe]() Torsor[R, U] {
	return Torsor[R, U]{}
}

// Convert re-expresses t in another real representation of the same
// universe. The stored value goes through Go's numeric conversion, with the
// truncation or rounding that implies.
//
// There is no implicit promotion between representations. Positions of
// different widths are compared or combined only after converting one of
// them, typically widening the narrower:
//
//	var a torsor.Of[uint8]
//	var b torsor.Of[uint16]
//	torsor.Convert[uint16](a) == b // a == b does not compile
func Convert[To, From Real, U Universe](t Torsor[From, U]) Torsor[To, U] {
	return Torsor[To, U]{v: To(t.v)}
}

// ConvertComplex is [Convert] for complex representations.
func ConvertComplex[To, From constraints.Complex, U Universe](t Torsor[From, U]) Torsor[To, U] {
	return Torsor[To, U]{v: To(t.v)}
}
