package text

// Decoration enumerates the boolean text decorations.
type Decoration uint8

const (
	Bold Decoration = iota
	Italic
	Underlined
	Strikethrough
	Obfuscated

	decorationCount = int(Obfuscated) + 1
)

func (d Decoration) String() string {
	switch d {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underlined:
		return "underlined"
	case Strikethrough:
		return "strikethrough"
	case Obfuscated:
		return "obfuscated"
	default:
		// this should never happen
		panic("unknown decoration")
	}
}

// Decorations lists all decorations in a stable order.
func Decorations() []Decoration {
	return []Decoration{Bold, Italic, Underlined, Strikethrough, Obfuscated}
}

// Style is an immutable set of formatting attributes. Every attribute is
// tri-state (see Attr): explicitly set, explicitly unset, or inheriting. An
// optional parent style is consulted only when resolving inheriting
// attributes via Flatten; it never owns or mutates anything.
//
// The zero Style inherits everything and is ready to use. All With*/Unset*
// methods return a derived copy and leave the receiver untouched.
type Style struct {
	parent      *Style
	color       Attr[Color]
	decorations [decorationCount]Attr[bool]
	click       Attr[ClickEvent]
	hover       Attr[HoverEvent]
	font        Attr[Key]
	insertion   Attr[string]
}

// EmptyStyle returns a style with every attribute inheriting.
func EmptyStyle() Style { return Style{} }

func (s Style) Color() Attr[Color]      { return s.color }
func (s Style) Click() Attr[ClickEvent] { return s.click }
func (s Style) Hover() Attr[HoverEvent] { return s.hover }
func (s Style) Font() Attr[Key]         { return s.font }
func (s Style) Insertion() Attr[string] { return s.insertion }

func (s Style) Decoration(d Decoration) Attr[bool] {
	return s.decorations[d]
}

// Parent returns the parent style, if any.
func (s Style) Parent() (Style, bool) {
	if s.parent == nil {
		return Style{}, false
	}
	return *s.parent, true
}

func (s Style) WithColor(c Color) Style {
	s.color = SetAttr(c)
	return s
}

func (s Style) UnsetColor() Style {
	s.color = UnsetAttr[Color]()
	return s
}

func (s Style) WithDecoration(d Decoration, enabled bool) Style {
	s.decorations[d] = SetAttr(enabled)
	return s
}

func (s Style) UnsetDecoration(d Decoration) Style {
	s.decorations[d] = UnsetAttr[bool]()
	return s
}

func (s Style) WithClick(e ClickEvent) Style {
	s.click = SetAttr(e)
	return s
}

func (s Style) UnsetClick() Style {
	s.click = UnsetAttr[ClickEvent]()
	return s
}

func (s Style) WithHover(e HoverEvent) Style {
	s.hover = SetAttr(e)
	return s
}

func (s Style) UnsetHover() Style {
	s.hover = UnsetAttr[HoverEvent]()
	return s
}

func (s Style) WithFont(k Key) Style {
	s.font = SetAttr(k)
	return s
}

func (s Style) UnsetFont() Style {
	s.font = UnsetAttr[Key]()
	return s
}

func (s Style) WithInsertion(text string) Style {
	s.insertion = SetAttr(text)
	return s
}

func (s Style) UnsetInsertion() Style {
	s.insertion = UnsetAttr[string]()
	return s
}

// WithParent attaches p as the inheritance parent of the returned style.
func (s Style) WithParent(p Style) Style {
	parent := p // copy, the receiver must not alias caller state
	s.parent = &parent
	return s
}

// WithoutParent detaches any inheritance parent.
func (s Style) WithoutParent() Style {
	s.parent = nil
	return s
}

// IsEmpty reports whether every attribute inherits and no parent is set.
func (s Style) IsEmpty() bool {
	return s.Equal(Style{})
}

// Merge resolves the receiver ("child") against parent attribute by
// attribute: an explicit child value wins, an explicit child unset stays
// unset so the removal survives further merges, and only inheriting
// attributes take the parent's state. Parent references are not merged; the
// result carries the receiver's parent.
func (s Style) Merge(parent Style) Style {
	out := s
	out.color = mergeAttr(s.color, parent.color)
	for i := range out.decorations {
		out.decorations[i] = mergeAttr(s.decorations[i], parent.decorations[i])
	}
	out.click = mergeAttr(s.click, parent.click)
	out.hover = mergeAttr(s.hover, parent.hover)
	out.font = mergeAttr(s.font, parent.font)
	out.insertion = mergeAttr(s.insertion, parent.insertion)
	return out
}

// Flatten resolves inheriting attributes through the parent chain and
// returns an equivalent style without a parent. Explicitly unset attributes
// stop the walk for that attribute and come out unset.
func (s Style) Flatten() Style {
	out := s
	for p := s.parent; p != nil; p = p.parent {
		out = out.Merge(*p)
	}
	out.parent = nil
	return out
}

// Equal is deep value equality, including the parent chain.
func (s Style) Equal(other Style) bool {
	if !attrEqual(s.color, other.color, func(a, b Color) bool { return a == b }) {
		return false
	}
	for i := range s.decorations {
		if !attrEqual(s.decorations[i], other.decorations[i], func(a, b bool) bool { return a == b }) {
			return false
		}
	}
	if !attrEqual(s.click, other.click, func(a, b ClickEvent) bool { return a == b }) {
		return false
	}
	if !attrEqual(s.hover, other.hover, HoverEvent.Equal) {
		return false
	}
	if !attrEqual(s.font, other.font, func(a, b Key) bool { return a == b }) {
		return false
	}
	if !attrEqual(s.insertion, other.insertion, func(a, b string) bool { return a == b }) {
		return false
	}
	if (s.parent == nil) != (other.parent == nil) {
		return false
	}
	if s.parent != nil && !s.parent.Equal(*other.parent) {
		return false
	}
	return true
}
