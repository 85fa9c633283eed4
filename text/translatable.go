package text

import (
	"fmt"
	"slices"
)

// Translatable is a component carrying a translation key and an ordered
// argument list. Resolving the key against a catalog is an external
// concern; the node only models the reference.
type Translatable struct {
	children []Component
	style    Style
	key      string
	args     []Component
}

func (t *Translatable) Kind() Kind            { return KindTranslatable }
func (t *Translatable) Children() []Component { return slices.Clone(t.children) }
func (t *Translatable) Style() Style          { return t.style }
func (t *Translatable) Key() string           { return t.key }

// Args returns a copy of the ordered argument list.
func (t *Translatable) Args() []Component { return slices.Clone(t.args) }

func (t *Translatable) WithKey(key string) *Translatable {
	if t.key == key {
		return t
	}
	return &Translatable{children: t.children, style: t.style, key: key, args: t.args}
}

// WithArgs replaces the argument list. Nil entries are dropped; unlike
// children, empty components stay, a translation may legitimately take the
// empty component as an argument.
func (t *Translatable) WithArgs(args ...Component) *Translatable {
	return &Translatable{children: t.children, style: t.style, key: t.key, args: normalize(args, false)}
}

func (t *Translatable) WithChildren(children ...Component) Component {
	return &Translatable{children: normalize(children, true), style: t.style, key: t.key, args: t.args}
}

func (t *Translatable) Append(children ...Component) Component {
	added := normalize(children, true)
	if len(added) == 0 {
		return t
	}
	return &Translatable{children: append(slices.Clone(t.children), added...), style: t.style, key: t.key, args: t.args}
}

func (t *Translatable) WithStyle(s Style) Component {
	return &Translatable{children: t.children, style: s, key: t.key, args: t.args}
}

func (t *Translatable) Equal(other Component) bool {
	o, ok := other.(*Translatable)
	if !ok {
		return false
	}
	if t == o {
		return true
	}
	return t.key == o.key &&
		componentsEqual(t.args, o.args) &&
		t.style.Equal(o.style) &&
		componentsEqual(t.children, o.children)
}

func (t *Translatable) ToBuilder() Builder {
	return &TranslatableBuilder{
		baseBuilder: baseBuilder{children: slices.Clone(t.children), style: t.style},
		key:         t.key,
		args:        slices.Clone(t.args),
	}
}

func (t *Translatable) component() {}

// TranslatableBuilder builds Translatable components.
type TranslatableBuilder struct {
	baseBuilder
	key  string
	args []Component
}

func NewTranslatableBuilder() *TranslatableBuilder { return &TranslatableBuilder{} }

func (b *TranslatableBuilder) Key(key string) *TranslatableBuilder {
	b.key = key
	return b
}

// Args replaces the argument list with a copy of args. Arguments are stored
// as already-built nodes; see ArgBuilders for builder inputs.
func (b *TranslatableBuilder) Args(args ...Component) *TranslatableBuilder {
	b.args = slices.Clone(args)
	return b
}

// ArgBuilders realizes every supplied builder immediately and stores the
// built nodes, so later mutation of the builders cannot leak into the tree.
// Builder inputs that fail their own validation fail here, at the point of
// the call.
func (b *TranslatableBuilder) ArgBuilders(args ...Builder) (*TranslatableBuilder, error) {
	built := make([]Component, 0, len(args))
	for i, a := range args {
		c, err := a.Build()
		if err != nil {
			return nil, fmt.Errorf("unable to build translation argument %d: %w", i, err)
		}
		built = append(built, c)
	}
	b.args = built
	return b, nil
}

func (b *TranslatableBuilder) Children(children ...Component) *TranslatableBuilder {
	b.setChildren(children)
	return b
}

func (b *TranslatableBuilder) Append(children ...Component) *TranslatableBuilder {
	b.appendChildren(children)
	return b
}

func (b *TranslatableBuilder) Style(s Style) *TranslatableBuilder {
	b.style = s
	return b
}

func (b *TranslatableBuilder) Build() (Component, error) {
	if b.key == "" {
		return nil, fmt.Errorf("translatable: %w", errKeyNotSet)
	}
	return &Translatable{
		children: normalize(b.children, true),
		style:    b.style,
		key:      b.key,
		args:     normalize(b.args, false),
	}, nil
}
