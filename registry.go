package scrollkit

// Registry owns the set of instances a Scheduler drives. Construct one per
// animation surface and hand it to New and NewScheduler; separate registries
// are fully independent, so parallel tests or multiple surfaces never share
// state.
//
// A Registry only grows. Instances live for the life of the surrounding
// page or scene and are excluded from work via Instance.Stop rather than
// removed.
type Registry struct {
	instances []*Instance
}

// NewRegistry creates an empty instance registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Len returns the number of registered instances, active or not.
func (r *Registry) Len() int {
	return len(r.instances)
}

// Active returns the currently active instances.
func (r *Registry) Active() []*Instance {
	return r.appendActive(nil)
}

// appendActive appends all currently active instances to dst and returns it.
// The Scheduler calls this with a reused scratch slice.
func (r *Registry) appendActive(dst []*Instance) []*Instance {
	for _, in := range r.instances {
		if in.active {
			dst = append(dst, in)
		}
	}
	return dst
}

func (r *Registry) register(in *Instance) {
	r.instances = append(r.instances, in)
}
