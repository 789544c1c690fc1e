package headparams

// Hook rewrites the tag list of one resolution pass.
type Hook interface {
	// Name identifies the hook, e.g. "templateParams".
	Name() string
	// ResolveTags returns the tags to hand to the next hook.
	ResolveTags(tags []Tag) []Tag
}

// HookFunc adapts a function to Hook.
type HookFunc struct {
	ID string
	Fn func([]Tag) []Tag
}

func (h HookFunc) Name() string                 { return h.ID }
func (h HookFunc) ResolveTags(tags []Tag) []Tag { return h.Fn(tags) }

// Registry runs hooks in registration order.
type Registry struct {
	hooks  []Hook
	byName map[string]int
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]int{}}
}

// Register appends h. A hook registered under an existing name replaces the
// earlier one in place.
func (r *Registry) Register(h Hook) {
	if h == nil {
		return
	}
	if i, ok := r.byName[h.Name()]; ok {
		r.hooks[i] = h
		return
	}
	r.byName[h.Name()] = len(r.hooks)
	r.hooks = append(r.hooks, h)
}

// Get returns the hook registered under name.
func (r *Registry) Get(name string) (Hook, bool) {
	i, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return r.hooks[i], true
}

// Resolve threads tags through every registered hook.
func (r *Registry) Resolve(tags []Tag) []Tag {
	for _, h := range r.hooks {
		tags = h.ResolveTags(tags)
	}
	return tags
}
