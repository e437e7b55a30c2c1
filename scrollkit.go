package scrollkit

// Rect is the viewport-relative bounding box of an anchor element: Top is the
// distance from the top edge of the visible viewport to the element's top
// edge (negative once the element has scrolled past it), Height the
// element's rendered height in pixels.
type Rect struct {
	Top, Height float64
}

// Timing remaps the shared progress fraction t in [0, 1] to an eased
// fraction. Results nominally stay in [0, 1] but curves such as elastic and
// back overshoot; emitted values are not clamped after easing.
type Timing func(t float64) float64

// Viewport supplies the two reads the engine needs from the host scrolling
// environment: the current vertical scroll offset and the visible height,
// both in pixels.
type Viewport interface {
	ScrollTop() float64
	Height() float64
}

// Element exposes the geometry of an anchor element, used to convert
// relative boundaries ("top-middle") into absolute scroll offsets.
type Element interface {
	Bounds() Rect
}

// PropertyWriter receives computed property values. The Scheduler invokes
// SetProperty once per property per publishing tick; values are formatted as
// "<number><unit>" with the unit possibly empty.
type PropertyWriter interface {
	SetProperty(key, value string)
}

// PropertyWriterFunc adapts a plain function to the PropertyWriter interface.
type PropertyWriterFunc func(key, value string)

// SetProperty calls f(key, value).
func (f PropertyWriterFunc) SetProperty(key, value string) { f(key, value) }

// PropertyValue is one computed property produced by an update: the declared
// key and the formatted "<number><unit>" value.
type PropertyValue struct {
	Key   string
	Value string
}

// SimViewport is an in-memory Viewport with directly settable state. It
// backs scroll scripts, tests, and any host without a real scrolling
// surface.
type SimViewport struct {
	Top        float64 // current scroll offset in pixels
	ViewHeight float64 // visible height in pixels
}

// ScrollTop returns the current scroll offset.
func (v *SimViewport) ScrollTop() float64 { return v.Top }

// Height returns the visible viewport height.
func (v *SimViewport) Height() float64 { return v.ViewHeight }

// SimElement is an in-memory Element with a settable bounding box.
type SimElement struct {
	Rect Rect
}

// Bounds returns the element's viewport-relative bounding box.
func (e *SimElement) Bounds() Rect { return e.Rect }
