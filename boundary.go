package scrollkit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// absoluteExpr matches "<number><optional unit>": a signed decimal
	// magnitude followed by unit letters or a percent sign.
	absoluteExpr = regexp.MustCompile(`^([+-]?(?:\d+(?:\.\d*)?|\.\d+))([a-z%]*)$`)

	// relativeExpr matches "<elementAnchor>-<viewportAnchor>".
	relativeExpr = regexp.MustCompile(`^[a-z]+-[a-z]+$`)
)

// Boundary is one parsed endpoint of an animation range: a numeric value and
// its unit. The unit is the empty string for unitless boundaries.
type Boundary struct {
	Value float64
	Unit  string
}

// String formats the boundary as "<number><unit>", e.g. "200px" or "0.5".
func (b Boundary) String() string {
	return formatValue(b.Value) + b.Unit
}

// formatValue renders a float with the fewest digits that round-trip,
// so 0.5 stays "0.5" rather than "0.500000".
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// IsAbsolute reports whether expr is an absolute boundary expression: a
// numeric magnitude with an optional trailing unit, such as "100px",
// "-12.5", or "80%".
func IsAbsolute(expr string) bool {
	return absoluteExpr.MatchString(strings.TrimSpace(expr))
}

// IsRelative reports whether expr is a relative boundary expression: two
// lowercase anchor names joined by a dash, such as "top-middle".
func IsRelative(expr string) bool {
	return relativeExpr.MatchString(strings.TrimSpace(expr))
}

// ParseAbsolute splits an absolute boundary expression into its numeric
// magnitude and trailing unit. It fails with ErrParse when expr is not
// "<number><unit>".
func ParseAbsolute(expr string) (Boundary, error) {
	m := absoluteExpr.FindStringSubmatch(strings.TrimSpace(expr))
	if m == nil {
		return Boundary{}, fmt.Errorf("%w: %q is not <number><unit>", ErrParse, expr)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Boundary{}, fmt.Errorf("%w: %q: %v", ErrParse, expr, err)
	}
	return Boundary{Value: v, Unit: m[2]}, nil
}

// RelativeToAbsolute converts a relative boundary expression into the
// absolute scroll offset (in pixels) at which the named anchor of the
// element aligns with the named anchor of the viewport. "top-middle" reads
// as "the element's top edge reaches the middle of the viewport".
//
// scrollTop and viewportHeight are the host's current scroll offset and
// visible height; the element's bounds are read once. The result always
// carries the "px" unit.
func RelativeToAbsolute(expr string, el Element, scrollTop, viewportHeight float64) (Boundary, error) {
	expr = strings.TrimSpace(expr)
	if !IsRelative(expr) {
		return Boundary{}, fmt.Errorf("%w: %q is not <anchor>-<anchor>", ErrParse, expr)
	}
	elAnchor, vpAnchor, _ := strings.Cut(expr, "-")

	elOffset, err := elementAnchorOffset(elAnchor, el, scrollTop)
	if err != nil {
		return Boundary{}, err
	}
	vpOffset, err := viewportAnchorOffset(vpAnchor, viewportHeight)
	if err != nil {
		return Boundary{}, err
	}
	return Boundary{Value: elOffset - vpOffset, Unit: "px"}, nil
}

// elementAnchorOffset returns the document-space offset of the named anchor
// on the element: the top edge, the vertical middle, or the bottom edge.
func elementAnchorOffset(anchor string, el Element, scrollTop float64) (float64, error) {
	bounds := el.Bounds()
	top := bounds.Top + scrollTop
	switch anchor {
	case "top":
		return top, nil
	case "middle":
		return top + bounds.Height/2, nil
	case "bottom":
		return top + bounds.Height, nil
	}
	return 0, fmt.Errorf("%w: unknown element anchor %q", ErrParse, anchor)
}

// viewportAnchorOffset returns the offset within the viewport of the named
// anchor line, measured from the viewport's top edge.
func viewportAnchorOffset(anchor string, viewportHeight float64) (float64, error) {
	switch anchor {
	case "top":
		return 0, nil
	case "middle":
		return viewportHeight / 2, nil
	case "bottom":
		return viewportHeight, nil
	}
	return 0, fmt.Errorf("%w: unknown viewport anchor %q", ErrParse, anchor)
}
