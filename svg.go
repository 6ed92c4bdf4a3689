package motion

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [Sequence.SVG] and
// [Sequence.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// XStep is the horizontal distance between consecutive steps. Zero means
	// one unit per step.
	XStep float64
}

// SVG converts a sequence to a string of SVG path commands that plots it,
// with time along the x axis and position along the y axis.
//
// See [Sequence.WriteSVG] for a version that writes to an [io.Writer] instead
// of returning a string.
func (s Sequence) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	s.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG converts a sequence to a string of SVG path commands and writes it
// to w. The path starts at the origin, the position before the first step.
//
// See [Sequence.SVG] for a version that returns a string instead.
func (s Sequence) WriteSVG(w io.Writer, opts SVGOptions) error {
	xStep := opts.XStep
	if xStep == 0 {
		xStep = 1
	}
	var err error
	writef := func(f string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, f, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		str := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.ContainsRune(str, '.') {
			str = strings.TrimRight(strings.TrimRight(str, "0"), ".")
		}
		return str
	}

	writef("M0,0")
	for i, v := range s {
		writef(" L%s,%s", format(float64(i+1)*xStep), format(v))
	}
	return err
}
