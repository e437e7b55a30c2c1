package scrollkit

import (
	"fmt"
	"sort"
)

// resolvedProperty is a Property with both boundaries parsed and the timing
// curve bound. The unit is taken from whichever boundary declares one.
type resolvedProperty struct {
	key    string
	from   Boundary
	to     Boundary
	unit   string
	timing Timing
}

// resolved is the normalized form of a Descriptor: scroll boundaries as
// absolute pixel offsets and properties sorted by key, so publish order is
// deterministic regardless of map iteration.
type resolved struct {
	from  Boundary
	to    Boundary
	props []resolvedProperty
}

// resolve validates and normalizes a raw descriptor against the viewport's
// current scroll position and height. The input descriptor is not mutated.
func resolve(d Descriptor, vp Viewport) (resolved, error) {
	if d.From == "" {
		return resolved{}, fmt.Errorf("%w: from", ErrMissingField)
	}
	if d.To == "" {
		return resolved{}, fmt.Errorf("%w: to", ErrMissingField)
	}

	from, err := resolveScrollBoundary(d.From, d.Anchor, vp)
	if err != nil {
		return resolved{}, err
	}
	to, err := resolveScrollBoundary(d.To, d.Anchor, vp)
	if err != nil {
		return resolved{}, err
	}
	// A zero-width window would divide by zero in the progress formula.
	if from.Value == to.Value {
		return resolved{}, fmt.Errorf("%w: from and to both resolve to %s", ErrInvalidRange, from)
	}

	r := resolved{from: from, to: to, props: make([]resolvedProperty, 0, len(d.Props))}
	for key, p := range d.Props {
		rp, err := resolveProperty(key, p)
		if err != nil {
			return resolved{}, err
		}
		r.props = append(r.props, rp)
	}
	sort.Slice(r.props, func(i, j int) bool { return r.props[i].key < r.props[j].key })
	return r, nil
}

// resolveScrollBoundary normalizes one outer range boundary to an absolute
// pixel offset. Relative expressions require an anchor element and read the
// viewport's scroll position and height once, here.
func resolveScrollBoundary(expr string, anchor Element, vp Viewport) (Boundary, error) {
	if IsRelative(expr) {
		if anchor == nil {
			return Boundary{}, fmt.Errorf("%w: relative boundary %q needs an anchor element", ErrInvalidRange, expr)
		}
		return RelativeToAbsolute(expr, anchor, vp.ScrollTop(), vp.Height())
	}
	return ParseAbsolute(expr)
}

// resolveProperty parses a property's value boundaries and binds its timing
// curve. Property boundaries must be absolute.
func resolveProperty(key string, p Property) (resolvedProperty, error) {
	if !IsAbsolute(p.From) || !IsAbsolute(p.To) {
		return resolvedProperty{}, fmt.Errorf("%w: %s: boundaries must be absolute values", ErrInvalidPropertyRange, key)
	}
	from, err := ParseAbsolute(p.From)
	if err != nil {
		return resolvedProperty{}, fmt.Errorf("%w: %s from: %v", ErrInvalidPropertyRange, key, err)
	}
	to, err := ParseAbsolute(p.To)
	if err != nil {
		return resolvedProperty{}, fmt.Errorf("%w: %s to: %v", ErrInvalidPropertyRange, key, err)
	}

	timing := p.TimingFunc
	if timing == nil {
		if p.Timing == "" {
			timing = Linear
		} else {
			t, ok := TimingByName(p.Timing)
			if !ok {
				return resolvedProperty{}, fmt.Errorf("%w: %q on property %s", ErrUnknownTiming, p.Timing, key)
			}
			timing = t
		}
	}

	unit := from.Unit
	if unit == "" {
		unit = to.Unit
	}
	return resolvedProperty{key: key, from: from, to: to, unit: unit, timing: timing}, nil
}
