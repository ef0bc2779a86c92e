package torsor

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var (
	// ErrMissingAnchor is returned when decoding text that lacks the marker.
	// A bare number is an offset and never decodes into a position.
	ErrMissingAnchor = errors.New("torsor: missing '@' marker")

	// ErrSyntax is returned when the text after the marker does not parse
	// as the representation, including values out of its range.
	ErrSyntax = errors.New("torsor: invalid value")
)

// MarshalText implements [encoding.TextMarshaler].
//
// The value is written by kind rather than through fmt, so representations
// with their own String method (time.Duration, fixed.Int26_6) encode as
// plain numbers and decode back exactly.
func (t Torsor[R, U]) MarshalText() ([]byte, error) {
	rv := reflect.ValueOf(t.v)
	b := []byte{Marker}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b = strconv.AppendInt(b, rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b = strconv.AppendUint(b, rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		b = strconv.AppendFloat(b, rv.Float(), 'g', -1, rv.Type().Bits())
	case reflect.Complex64, reflect.Complex128:
		b = append(b, strconv.FormatComplex(rv.Complex(), 'g', -1, rv.Type().Bits())...)
	default:
		return nil, fmt.Errorf("torsor: unsupported kind %s", rv.Kind())
	}
	return b, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts the form
// written by MarshalText.
func (t *Torsor[R, U]) UnmarshalText(text []byte) error {
	s, ok := strings.CutPrefix(string(text), string(Marker))
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingAnchor, text)
	}

	var v R
	rv := reflect.ValueOf(&v).Elem()
	bits := rv.Type().Bits()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		rv.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(s, bits)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		rv.SetComplex(c)
	default:
		return fmt.Errorf("torsor: unsupported kind %s", rv.Kind())
	}

	t.v = v
	return nil
}
