package torsor

import "fmt"

// Marker precedes every printed position.
const Marker = '@'

// String renders t as the marker followed by the default formatting of
// the representation, e.g. "@10".
func (t Torsor[R, U]) String() string {
	return string(Marker) + fmt.Sprint(t.v)
}

// Format implements [fmt.Formatter]. Verb, flags, width and precision are
// applied to the representation only; the marker is written in front.
func (t Torsor[R, U]) Format(f fmt.State, verb rune) {
	f.Write([]byte{Marker})
	fmt.Fprintf(f, fmt.FormatString(f, verb), t.v)
}
