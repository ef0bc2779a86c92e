// Package torsor separates absolute (anchored) values from relative
// (offset) values that share one numeric representation.
//
// A [Torsor] is a point on an interval scale. An offset is a plain value of
// the representation type. The method set only offers the combinations that
// are dimensionally sound:
//
//	position + offset   -> position   (Torsor.Add, AddTo)
//	position - offset   -> position   (Torsor.Sub)
//	position - position -> offset     (Torsor.Diff)
//	position += offset                (Torsor.Inc)
//	position -= offset                (Torsor.Dec)
//
// Everything else (adding two positions, subtracting a position from an
// offset, assigning an offset to a position, mixing universes) has no API and
// is rejected by the compiler.
//
// # Universes
//
// The second type parameter partitions positions into families that share
// a representation but must never be mixed:
//
//	type Screen struct{}
//	type World struct{}
//
//	var s torsor.Torsor[float64, Screen]
//	var w torsor.Torsor[float64, World]
//	s.Diff(w) // does not compile
//
// [Of] is shorthand for the shared [Default] universe.
//
// # Capabilities
//
// Which operations exist for a representation is decided by constraints:
// every [Number] supports arithmetic, equality and formatting; only [Real]
// representations can be ordered ([Less], [Compare], [Min], ...) or
// converted between widths ([Convert]).
//
// Printing prefixes the representation's own formatting with '@':
//
//	fmt.Println(torsor.Of[int]{}.Add(10)) // @10
package torsor
