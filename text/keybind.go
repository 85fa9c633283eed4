package text

import (
	"fmt"
	"slices"
)

// Keybind is a component rendered as the client-side binding of a named
// action, e.g. "key.jump".
type Keybind struct {
	children []Component
	style    Style
	keybind  string
}

func (k *Keybind) Kind() Kind            { return KindKeybind }
func (k *Keybind) Children() []Component { return slices.Clone(k.children) }
func (k *Keybind) Style() Style          { return k.style }
func (k *Keybind) Keybind() string       { return k.keybind }

func (k *Keybind) WithKeybind(keybind string) *Keybind {
	if k.keybind == keybind {
		return k
	}
	return &Keybind{children: k.children, style: k.style, keybind: keybind}
}

func (k *Keybind) WithChildren(children ...Component) Component {
	return &Keybind{children: normalize(children, false), style: k.style, keybind: k.keybind}
}

func (k *Keybind) Append(children ...Component) Component {
	added := normalize(children, false)
	if len(added) == 0 {
		return k
	}
	return &Keybind{children: append(slices.Clone(k.children), added...), style: k.style, keybind: k.keybind}
}

func (k *Keybind) WithStyle(s Style) Component {
	return &Keybind{children: k.children, style: s, keybind: k.keybind}
}

func (k *Keybind) Equal(other Component) bool {
	o, ok := other.(*Keybind)
	if !ok {
		return false
	}
	if k == o {
		return true
	}
	return k.keybind == o.keybind && k.style.Equal(o.style) && componentsEqual(k.children, o.children)
}

func (k *Keybind) ToBuilder() Builder {
	return &KeybindBuilder{
		baseBuilder: baseBuilder{children: slices.Clone(k.children), style: k.style},
		keybind:     k.keybind,
	}
}

func (k *Keybind) component() {}

// KeybindBuilder builds Keybind components; the keybind name is required.
type KeybindBuilder struct {
	baseBuilder
	keybind string
}

func NewKeybindBuilder() *KeybindBuilder { return &KeybindBuilder{} }

func (b *KeybindBuilder) Keybind(keybind string) *KeybindBuilder {
	b.keybind = keybind
	return b
}

func (b *KeybindBuilder) Children(children ...Component) *KeybindBuilder {
	b.setChildren(children)
	return b
}

func (b *KeybindBuilder) Append(children ...Component) *KeybindBuilder {
	b.appendChildren(children)
	return b
}

func (b *KeybindBuilder) Style(s Style) *KeybindBuilder {
	b.style = s
	return b
}

func (b *KeybindBuilder) Build() (Component, error) {
	if b.keybind == "" {
		return nil, fmt.Errorf("keybind: %w", errKeybindNotSet)
	}
	return &Keybind{
		children: normalize(b.children, false),
		style:    b.style,
		keybind:  b.keybind,
	}, nil
}
