package placeholder

import "go.uber.org/zap"

// Traced wraps next so every resolution is logged at debug level. It is a
// diagnostic aid for composed resolver graphs; the wrapped resolver is
// queried exactly as before.
func Traced(next Resolver, log *zap.Logger) Resolver {
	if next == nil {
		panic("placeholder: resolver must not be nil")
	}
	if log == nil {
		panic("placeholder: log must not be nil")
	}
	return &tracedResolver{next: next, log: log}
}

type tracedResolver struct {
	next Resolver
	log  *zap.Logger
}

func (t *tracedResolver) Resolve(key string) (Replacement, bool) {
	rep, ok := t.next.Resolve(key)
	if ok {
		t.log.Debug("placeholder resolved", zap.String("key", key))
	} else {
		t.log.Debug("placeholder miss", zap.String("key", key))
	}
	return rep, ok
}
