package text

import (
	"fmt"
	"slices"
)

// Selector is a component referencing entities by a selector pattern. When
// the pattern matches several entities at render time, the optional
// separator joins the rendered results.
type Selector struct {
	children  []Component
	style     Style
	pattern   string
	separator Component
}

func (s *Selector) Kind() Kind            { return KindSelector }
func (s *Selector) Children() []Component { return slices.Clone(s.children) }
func (s *Selector) Style() Style          { return s.style }
func (s *Selector) Pattern() string       { return s.pattern }

// Separator returns the joining node, or nil when the renderer default
// applies.
func (s *Selector) Separator() Component { return s.separator }

func (s *Selector) WithPattern(pattern string) *Selector {
	if s.pattern == pattern {
		return s
	}
	return &Selector{children: s.children, style: s.style, pattern: pattern, separator: s.separator}
}

func (s *Selector) WithSeparator(separator Component) *Selector {
	if componentEqual(s.separator, separator) {
		return s
	}
	return &Selector{children: s.children, style: s.style, pattern: s.pattern, separator: separator}
}

func (s *Selector) WithChildren(children ...Component) Component {
	return &Selector{children: normalize(children, true), style: s.style, pattern: s.pattern, separator: s.separator}
}

func (s *Selector) Append(children ...Component) Component {
	added := normalize(children, true)
	if len(added) == 0 {
		return s
	}
	return &Selector{children: append(slices.Clone(s.children), added...), style: s.style, pattern: s.pattern, separator: s.separator}
}

func (s *Selector) WithStyle(style Style) Component {
	return &Selector{children: s.children, style: style, pattern: s.pattern, separator: s.separator}
}

func (s *Selector) Equal(other Component) bool {
	o, ok := other.(*Selector)
	if !ok {
		return false
	}
	if s == o {
		return true
	}
	return s.pattern == o.pattern &&
		componentEqual(s.separator, o.separator) &&
		s.style.Equal(o.style) &&
		componentsEqual(s.children, o.children)
}

func (s *Selector) ToBuilder() Builder {
	return &SelectorBuilder{
		baseBuilder: baseBuilder{children: slices.Clone(s.children), style: s.style},
		pattern:     s.pattern,
		separator:   s.separator,
	}
}

func (s *Selector) component() {}

// SelectorBuilder builds Selector components; the pattern is required.
type SelectorBuilder struct {
	baseBuilder
	pattern   string
	separator Component
}

func NewSelectorBuilder() *SelectorBuilder { return &SelectorBuilder{} }

func (b *SelectorBuilder) Pattern(pattern string) *SelectorBuilder {
	b.pattern = pattern
	return b
}

func (b *SelectorBuilder) Separator(separator Component) *SelectorBuilder {
	b.separator = separator
	return b
}

func (b *SelectorBuilder) Children(children ...Component) *SelectorBuilder {
	b.setChildren(children)
	return b
}

func (b *SelectorBuilder) Append(children ...Component) *SelectorBuilder {
	b.appendChildren(children)
	return b
}

func (b *SelectorBuilder) Style(s Style) *SelectorBuilder {
	b.style = s
	return b
}

func (b *SelectorBuilder) Build() (Component, error) {
	if b.pattern == "" {
		return nil, fmt.Errorf("selector: %w", errPatternNotSet)
	}
	return &Selector{
		children:  normalize(b.children, true),
		style:     b.style,
		pattern:   b.pattern,
		separator: b.separator,
	}, nil
}
