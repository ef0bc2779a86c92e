package torsor_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/roach88/torsor/torsor"
)

func TestString(t *testing.T) {
	origin := torsor.Of[int]{}
	assert.Equal(t, "@10", origin.Add(10).String())
	assert.Equal(t, "@-20", origin.Sub(20).String())
	assert.Equal(t, "@0", origin.String())
}

func TestFormat(t *testing.T) {
	origin := torsor.Of[int]{}
	tests := []struct {
		name   string
		format string
		value  any
		want   string
	}{
		{"value verb", "%v", origin.Add(10), "@10"},
		{"decimal", "%d", origin.Sub(20), "@-20"},
		{"hex", "%x", origin.Add(255), "@ff"},
		{"width pads the value", "%4d", origin.Add(7), "@   7"},
		{"plus flag", "%+d", origin.Add(3), "@+3"},
		{"precision", "%.2f", torsor.Of[float64]{}.Add(3.14159), "@3.14"},
		{"complex", "%v", torsor.Of[complex128]{}.Add(1 + 2i), "@(1+2i)"},
		{"stringer representation", "%v", torsor.Of[time.Duration]{}.Add(90 * time.Second), "@1m30s"},
		{"println", "%s", fmt.Sprintln(origin.Add(10)), "@10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fmt.Sprintf(tt.format, tt.value))
		})
	}
}

func TestFormat_Golden(t *testing.T) {
	type pitch struct{}
	var b strings.Builder
	note := torsor.Anchor[int8, pitch]().Add(60)
	for _, step := range []int8{0, 2, 2, 1, 2, 2, 2, 1} {
		note.Inc(step)
		fmt.Fprintf(&b, "%v %3d %x\n", note, note, note)
	}
	origin := torsor.Anchor[int8, pitch]()
	fmt.Fprintf(&b, "span %d from %v to %v\n", note.Diff(origin.Add(60)), origin.Add(60), note)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "scale", []byte(b.String()))
}
