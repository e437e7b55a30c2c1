package scrollkit

import "math"

// progress returns the percentage of the activation window traversed at
// scrollTop, clamped to [0, 100]. The window may run downward (to below
// from); the signed division handles both directions uniformly. resolve
// guarantees the window is never zero-width.
func (r *resolved) progress(scrollTop float64) float64 {
	total := r.to.Value - r.from.Value
	current := scrollTop - r.from.Value
	pct := current / (total / 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// update computes the eased value of every property at scrollTop, appending
// the results to dst in key order. Values are rounded to two decimal places
// before formatting so emitted strings stay free of floating point noise.
func (r *resolved) update(scrollTop float64, dst []PropertyValue) []PropertyValue {
	pct := r.progress(scrollTop)
	for i := range r.props {
		p := &r.props[i]
		diff := p.from.Value - p.to.Value
		t := p.timing(pct / 100)
		v := p.from.Value - diff*t
		v = math.Round(v*100) / 100
		if v == 0 {
			v = 0 // never format negative zero
		}
		dst = append(dst, PropertyValue{Key: p.key, Value: formatValue(v) + p.unit})
	}
	return dst
}
