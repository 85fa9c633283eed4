package placeholder

// Builder accumulates placeholders and sub-resolvers into one composed
// resolver. Registration order is a single monotonic sequence across all
// methods, and later registrations take priority: when two sources answer
// the same key, the most recently registered one wins. Within one bulk
// call, elements register in argument order, so the last element has the
// highest priority of that call.
//
// A builder is not safe for concurrent mutation. Build may be called more
// than once; each call snapshots the sources registered so far.
type Builder struct {
	sources []Resolver
}

func NewBuilder() *Builder { return &Builder{} }

// Placeholder registers a single key/replacement pair.
func (b *Builder) Placeholder(p Placeholder) *Builder {
	b.sources = append(b.sources, Placeholders(p))
	return b
}

// Placeholders registers the given pairs as one source; within the call a
// later pair with the same key wins over an earlier one.
func (b *Builder) Placeholders(placeholders ...Placeholder) *Builder {
	if len(placeholders) == 0 {
		return b
	}
	b.sources = append(b.sources, Placeholders(placeholders...))
	return b
}

// PlaceholderMap registers a snapshot of m as one source.
func (b *Builder) PlaceholderMap(m map[string]Replacement) *Builder {
	if len(m) == 0 {
		return b
	}
	b.sources = append(b.sources, Map(m))
	return b
}

// Resolver registers a sub-resolver. A nil resolver is a programmer error
// and panics.
func (b *Builder) Resolver(r Resolver) *Builder {
	if r == nil {
		panic("placeholder: resolver must not be nil")
	}
	b.sources = append(b.sources, r)
	return b
}

// Resolvers registers sub-resolvers in argument order.
func (b *Builder) Resolvers(resolvers ...Resolver) *Builder {
	for _, r := range resolvers {
		b.Resolver(r)
	}
	return b
}

// Dynamic registers a caching function-backed resolver; see Dynamic.
func (b *Builder) Dynamic(fn func(key string) (Replacement, bool)) *Builder {
	return b.Resolver(Dynamic(fn))
}

// Build composes the accumulated sources. Nothing registered collapses to
// Empty and a sole source is returned directly; otherwise the sources are
// grouped with the latest registration queried first.
func (b *Builder) Build() Resolver {
	switch len(b.sources) {
	case 0:
		return Empty()
	case 1:
		return b.sources[0]
	}
	ordered := make([]Resolver, len(b.sources))
	for i, r := range b.sources {
		ordered[len(b.sources)-1-i] = r
	}
	return &groupedResolver{resolvers: ordered}
}
