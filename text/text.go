package text

import "slices"

// Text is a plain-content component.
type Text struct {
	children []Component
	style    Style
	content  string
}

var emptyText = &Text{}

// Empty returns the canonical empty text component.
func Empty() *Text { return emptyText }

// NewText builds a text component with optional children. Nil children are
// dropped; empty components are kept, text accepts any child sequence.
func NewText(content string, children ...Component) *Text {
	return &Text{children: normalize(children, false), content: content}
}

func (t *Text) Kind() Kind            { return KindText }
func (t *Text) Children() []Component { return slices.Clone(t.children) }
func (t *Text) Style() Style          { return t.style }
func (t *Text) Content() string       { return t.content }

// WithContent returns a node with the content replaced; the receiver is
// returned unchanged when the content is already equal.
func (t *Text) WithContent(content string) *Text {
	if t.content == content {
		return t
	}
	return &Text{children: t.children, style: t.style, content: content}
}

func (t *Text) WithChildren(children ...Component) Component {
	return &Text{children: normalize(children, false), style: t.style, content: t.content}
}

func (t *Text) Append(children ...Component) Component {
	added := normalize(children, false)
	if len(added) == 0 {
		return t
	}
	return &Text{children: append(slices.Clone(t.children), added...), style: t.style, content: t.content}
}

func (t *Text) WithStyle(s Style) Component {
	return &Text{children: t.children, style: s, content: t.content}
}

func (t *Text) Equal(other Component) bool {
	o, ok := other.(*Text)
	if !ok {
		return false
	}
	if t == o {
		return true
	}
	return t.content == o.content && t.style.Equal(o.style) && componentsEqual(t.children, o.children)
}

func (t *Text) ToBuilder() Builder {
	return &TextBuilder{
		baseBuilder: baseBuilder{children: slices.Clone(t.children), style: t.style},
		content:     t.content,
	}
}

func (t *Text) component() {}

// TextBuilder builds Text components. The zero value is ready to use.
type TextBuilder struct {
	baseBuilder
	content string
}

func NewTextBuilder() *TextBuilder { return &TextBuilder{} }

func (b *TextBuilder) Content(content string) *TextBuilder {
	b.content = content
	return b
}

// Children replaces the accumulated child sequence with a copy of children.
func (b *TextBuilder) Children(children ...Component) *TextBuilder {
	b.setChildren(children)
	return b
}

// Append adds children after the ones accumulated so far.
func (b *TextBuilder) Append(children ...Component) *TextBuilder {
	b.appendChildren(children)
	return b
}

func (b *TextBuilder) Style(s Style) *TextBuilder {
	b.style = s
	return b
}

func (b *TextBuilder) Build() (Component, error) {
	return &Text{children: normalize(b.children, false), style: b.style, content: b.content}, nil
}
