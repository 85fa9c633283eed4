package text

import "strings"

// DefaultNamespace is applied by ParseKey when the input carries no
// namespace of its own.
const DefaultNamespace = "minecraft"

// Key is a namespaced resource identifier, e.g. "minecraft:storage_name".
// It is carried as an opaque value; character-set validation belongs to the
// layer that produced the identifier, not to the tree model.
type Key struct {
	namespace string
	value     string
}

// NewKey builds a key from an explicit namespace and value.
func NewKey(namespace, value string) Key {
	return Key{namespace: namespace, value: value}
}

// ParseKey splits input on the first ':'. Input without a separator is
// treated as a value in the default namespace.
func ParseKey(input string) Key {
	if ns, val, ok := strings.Cut(input, ":"); ok {
		return Key{namespace: ns, value: val}
	}
	return Key{namespace: DefaultNamespace, value: input}
}

func (k Key) Namespace() string { return k.namespace }
func (k Key) Value() string     { return k.value }

// IsZero reports whether the key was never populated.
func (k Key) IsZero() bool { return k.namespace == "" && k.value == "" }

func (k Key) String() string {
	if k.IsZero() {
		return ""
	}
	return k.namespace + ":" + k.value
}
