package text

// attrState distinguishes the three states every style attribute can be in.
// The zero value is "inherit" so that an empty Style inherits everything.
type attrState uint8

const (
	attrInherit attrState = iota
	attrSet
	attrUnset
)

func (s attrState) String() string {
	switch s {
	case attrSet:
		return "set"
	case attrUnset:
		return "unset"
	default:
		return "inherit"
	}
}

// Attr is a tri-state style attribute: an explicit value, an explicit
// removal ("unset"), or absent ("inherit", the zero value). Explicit removal
// blocks inheritance from a parent style, absence falls through to it.
type Attr[T any] struct {
	state attrState
	value T
}

// SetAttr wraps a value into an explicitly set attribute.
func SetAttr[T any](value T) Attr[T] {
	return Attr[T]{state: attrSet, value: value}
}

// UnsetAttr returns an attribute marking explicit removal.
func UnsetAttr[T any]() Attr[T] {
	return Attr[T]{state: attrUnset}
}

// Get returns the attribute value and whether it is explicitly set.
func (a Attr[T]) Get() (T, bool) {
	return a.value, a.state == attrSet
}

func (a Attr[T]) IsSet() bool     { return a.state == attrSet }
func (a Attr[T]) IsUnset() bool   { return a.state == attrUnset }
func (a Attr[T]) IsInherit() bool { return a.state == attrInherit }

// mergeAttr resolves one attribute of a child style against the same
// attribute of a parent: any explicit child state (set or unset) wins,
// only an inheriting child falls through to the parent.
func mergeAttr[T any](child, parent Attr[T]) Attr[T] {
	if child.state != attrInherit {
		return child
	}
	return parent
}

// attrEqual compares two attributes using eq for the payload. Values are
// only compared when both attributes are explicitly set.
func attrEqual[T any](a, b Attr[T], eq func(a, b T) bool) bool {
	if a.state != b.state {
		return false
	}
	if a.state != attrSet {
		return true
	}
	return eq(a.value, b.value)
}
