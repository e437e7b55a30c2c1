package scrollkit

// Instance is one independently startable scroll animation: an activation
// window in scroll space mapped to one or more eased property ranges. It is
// plain data — an active flag, the instance's own copy of the raw
// descriptor, and the resolved form the per-frame path reads.
//
// Instances are not safe for concurrent use; drive them from the same
// goroutine that ticks the Scheduler.
type Instance struct {
	registry *Registry
	viewport Viewport
	raw      Descriptor
	resolved resolved
	active   bool
}

// New resolves the descriptor against the viewport's current state and
// registers the resulting instance. The descriptor is deep-copied first, so
// mutating d or its Props map afterwards has no effect on the instance.
//
// The instance starts inactive; call Start to include it in scheduler work.
// Resolution errors (see errors.go) are returned without registering
// anything.
func New(registry *Registry, viewport Viewport, d Descriptor) (*Instance, error) {
	in := &Instance{registry: registry, viewport: viewport, raw: d.clone()}
	res, err := resolve(in.raw, viewport)
	if err != nil {
		return nil, err
	}
	in.resolved = res
	registry.register(in)
	return in, nil
}

// IsActive reports whether the instance participates in scheduler ticks.
func (in *Instance) IsActive() bool {
	return in.active
}

// Start marks the instance active. The next scheduler tick picks it up.
func (in *Instance) Start() {
	in.active = true
}

// Stop marks the instance inactive. It is a flag flip, not an interrupt:
// the instance simply drops out of the next tick's filter pass.
func (in *Instance) Stop() {
	in.active = false
}

// Calculate re-resolves the instance from its original raw descriptor using
// the viewport's current scroll position and height. Call it after layout
// changes move the anchor element. Re-resolving an unchanged descriptor
// under unchanged viewport state is idempotent. On error the previously
// resolved state is kept.
func (in *Instance) Calculate() error {
	res, err := resolve(in.raw, in.viewport)
	if err != nil {
		return err
	}
	in.resolved = res
	return nil
}

// Update computes the instance's property values at the given scroll offset
// directly, bypassing the scheduler. Useful for tests and manual driving.
func (in *Instance) Update(scrollTop float64) []PropertyValue {
	return in.resolved.update(scrollTop, nil)
}

// appendUpdate is Update with a caller-provided destination slice, used by
// the Scheduler to avoid per-tick allocations.
func (in *Instance) appendUpdate(scrollTop float64, dst []PropertyValue) []PropertyValue {
	return in.resolved.update(scrollTop, dst)
}
