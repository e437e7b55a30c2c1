package scrollkit

// Property declares one animated property of a Descriptor. From and To are
// absolute boundary expressions in value space ("0", "1.5", "-20px",
// "100%"); relative expressions are not allowed at property granularity.
//
// Timing optionally names a built-in curve (see TimingNames). TimingFunc,
// when non-nil, takes precedence over Timing and is used as-is. Leaving both
// unset selects the linear curve.
type Property struct {
	From       string
	To         string
	Timing     string
	TimingFunc Timing
}

// Descriptor describes one scroll-driven animation before resolution. From
// and To bound the activation window in scroll space, either as absolute
// expressions ("0px", "1200px") or, when Anchor is set, as relative
// anchor pairs ("top-middle"). Props maps property keys (typically CSS
// custom property names) to their value ranges.
//
// A Descriptor is plain data. New copies it on intake, so the caller may
// reuse or mutate it afterwards without affecting created instances.
type Descriptor struct {
	From   string
	To     string
	Anchor Element
	Props  map[string]Property
}

// clone returns a deep copy of d, disconnected from caller-held maps.
func (d Descriptor) clone() Descriptor {
	c := d
	c.Props = make(map[string]Property, len(d.Props))
	for key, p := range d.Props {
		c.Props[key] = p
	}
	return c
}
