package placeholder

import (
	"maps"
	"sync"
)

// Resolver maps a key to its replacement. Resolve is total over any key: an
// unknown key is a miss (ok == false), never an error.
type Resolver interface {
	Resolve(key string) (Replacement, bool)
}

// Empty returns the resolver that misses every key.
func Empty() Resolver { return emptyResolver{} }

type emptyResolver struct{}

func (emptyResolver) Resolve(string) (Replacement, bool) {
	return Replacement{}, false
}

// Map builds a resolver over a snapshot of m; later mutation of m is not
// observed.
func Map(m map[string]Replacement) Resolver {
	if len(m) == 0 {
		return Empty()
	}
	return &mapResolver{entries: maps.Clone(m)}
}

// Placeholders builds a resolver over the given placeholders. When several
// placeholders carry the same key the later one wins.
func Placeholders(placeholders ...Placeholder) Resolver {
	if len(placeholders) == 0 {
		return Empty()
	}
	entries := make(map[string]Replacement, len(placeholders))
	for _, p := range placeholders {
		entries[p.Key()] = p.Replacement()
	}
	return &mapResolver{entries: entries}
}

type mapResolver struct {
	entries map[string]Replacement
}

func (r *mapResolver) Resolve(key string) (Replacement, bool) {
	rep, ok := r.entries[key]
	return rep, ok
}

// Combining composes resolvers queried in argument order; the first hit
// wins. Zero resolvers collapse to Empty, a single resolver is returned
// as-is without wrapping. A nil entry is a programmer error and panics.
func Combining(resolvers ...Resolver) Resolver {
	for _, r := range resolvers {
		if r == nil {
			panic("placeholder: resolvers must not contain nil entries")
		}
	}
	switch len(resolvers) {
	case 0:
		return Empty()
	case 1:
		return resolvers[0]
	}
	owned := make([]Resolver, len(resolvers))
	copy(owned, resolvers)
	return &groupedResolver{resolvers: owned}
}

// groupedResolver queries its sub-resolvers in slice order and returns the
// first hit.
type groupedResolver struct {
	resolvers []Resolver
}

func (g *groupedResolver) Resolve(key string) (Replacement, bool) {
	for _, r := range g.resolvers {
		if rep, ok := r.Resolve(key); ok {
			return rep, ok
		}
	}
	return Replacement{}, false
}

// Dynamic builds a resolver backed by fn. The first hit for a key is cached
// for the resolver's lifetime and fn is never asked about that key again;
// misses are not cached, so a later call for the same key retries fn. The
// internal lock is held across the fn call, which makes the computation
// at-most-once per key even under concurrent resolution; fn must therefore
// not resolve through this resolver recursively. A panic inside fn
// propagates to the caller.
func Dynamic(fn func(key string) (Replacement, bool)) Resolver {
	if fn == nil {
		panic("placeholder: fn must not be nil")
	}
	return &dynamicResolver{fn: fn, cache: make(map[string]Replacement)}
}

type dynamicResolver struct {
	fn    func(string) (Replacement, bool)
	mu    sync.Mutex
	cache map[string]Replacement
}

func (d *dynamicResolver) Resolve(key string) (Replacement, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if rep, ok := d.cache[key]; ok {
		return rep, true
	}
	rep, ok := d.fn(key)
	if ok {
		d.cache[key] = rep
	}
	return rep, ok
}
