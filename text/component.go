// Package text models richly formatted text as an immutable tree of typed
// component nodes. Nodes are built bottom-up through per-variant builders or
// derived from existing nodes through With* methods; published nodes are
// never mutated. Styles attach per node and resolve attribute inheritance
// through explicit tri-state attributes.
package text

import "slices"

// Kind tags one of the fixed component variants.
type Kind uint8

const (
	KindText Kind = iota
	KindTranslatable
	KindSelector
	KindScore
	KindKeybind
	KindBlockNBT
	KindEntityNBT
	KindStorageNBT
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTranslatable:
		return "translatable"
	case KindSelector:
		return "selector"
	case KindScore:
		return "score"
	case KindKeybind:
		return "keybind"
	case KindBlockNBT:
		return "block-nbt"
	case KindEntityNBT:
		return "entity-nbt"
	case KindStorageNBT:
		return "storage-nbt"
	default:
		// this should never happen
		panic("unknown component kind")
	}
}

// Component is one immutable node of a rich-text tree. The variant set is
// closed; exhaustive switches over Kind are safe.
//
// Children sequences never contain nil entries. With* methods return a new
// node (or the receiver when nothing changes) and never mutate the receiver,
// its children, or any caller-supplied slice.
type Component interface {
	Kind() Kind

	// Children returns a copy of the ordered child sequence.
	Children() []Component

	Style() Style

	// WithChildren replaces the whole child sequence. The input is copied
	// and normalized per variant policy before storage.
	WithChildren(children ...Component) Component

	// Append returns a node with children added after the existing ones.
	Append(children ...Component) Component

	// WithStyle replaces the style wholesale; no merging happens here.
	WithStyle(s Style) Component

	// Equal is deep value equality over the full subtree.
	Equal(other Component) bool

	// ToBuilder returns a fresh mutable builder populated from this node.
	ToBuilder() Builder

	component() // closed set marker
}

// Builder is the terminal surface shared by all per-variant builders.
// Build validates required fields and produces a fresh immutable node;
// calling it again on the same builder yields another, equal node.
type Builder interface {
	Build() (Component, error)
}

// componentEqual is nil-tolerant deep equality for optional nodes such as
// separators.
func componentEqual(a, b Component) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// componentsEqual compares two child sequences pairwise.
func componentsEqual(a, b []Component) bool {
	return slices.EqualFunc(a, b, componentEqual)
}

// normalize copies src into an owned slice, dropping nil entries. When
// dropEmpty is set, entries equal to the canonical empty text component are
// dropped too; the list-like variants (selector, translatable, NBT) use
// this policy so their child sequences collapse cleanly.
func normalize(src []Component, dropEmpty bool) []Component {
	if len(src) == 0 {
		return nil
	}
	out := make([]Component, 0, len(src))
	for _, c := range src {
		if c == nil {
			continue
		}
		if dropEmpty && c.Equal(Empty()) {
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
