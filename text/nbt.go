package text

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
)

// The NBT-sourced variants reference structured data by path plus a source:
// a block position pattern, an entity selector, or a storage key. The
// interpret flag asks the renderer to parse the looked-up value as a
// component instead of showing it verbatim. Multiple lookup results are
// joined by the optional separator.

// BlockNBT sources NBT data from the block at a position pattern. The
// pattern is carried opaquely; coordinate parsing is a renderer concern.
type BlockNBT struct {
	children  []Component
	style     Style
	nbtPath   string
	interpret bool
	separator Component
	pos       string
}

func (n *BlockNBT) Kind() Kind            { return KindBlockNBT }
func (n *BlockNBT) Children() []Component { return slices.Clone(n.children) }
func (n *BlockNBT) Style() Style          { return n.style }
func (n *BlockNBT) NBTPath() string       { return n.nbtPath }
func (n *BlockNBT) Interpret() bool       { return n.interpret }
func (n *BlockNBT) Separator() Component  { return n.separator }
func (n *BlockNBT) Pos() string           { return n.pos }

func (n *BlockNBT) WithNBTPath(nbtPath string) *BlockNBT {
	if n.nbtPath == nbtPath {
		return n
	}
	out := *n
	out.nbtPath = nbtPath
	return &out
}

func (n *BlockNBT) WithInterpret(interpret bool) *BlockNBT {
	if n.interpret == interpret {
		return n
	}
	out := *n
	out.interpret = interpret
	return &out
}

func (n *BlockNBT) WithSeparator(separator Component) *BlockNBT {
	if componentEqual(n.separator, separator) {
		return n
	}
	out := *n
	out.separator = separator
	return &out
}

func (n *BlockNBT) WithPos(pos string) *BlockNBT {
	if n.pos == pos {
		return n
	}
	out := *n
	out.pos = pos
	return &out
}

func (n *BlockNBT) WithChildren(children ...Component) Component {
	out := *n
	out.children = normalize(children, true)
	return &out
}

func (n *BlockNBT) Append(children ...Component) Component {
	added := normalize(children, true)
	if len(added) == 0 {
		return n
	}
	out := *n
	out.children = append(slices.Clone(n.children), added...)
	return &out
}

func (n *BlockNBT) WithStyle(s Style) Component {
	out := *n
	out.style = s
	return &out
}

func (n *BlockNBT) Equal(other Component) bool {
	o, ok := other.(*BlockNBT)
	if !ok {
		return false
	}
	if n == o {
		return true
	}
	return n.nbtPath == o.nbtPath &&
		n.interpret == o.interpret &&
		n.pos == o.pos &&
		componentEqual(n.separator, o.separator) &&
		n.style.Equal(o.style) &&
		componentsEqual(n.children, o.children)
}

func (n *BlockNBT) ToBuilder() Builder {
	return &BlockNBTBuilder{
		nbtBuilder: nbtBuilder{
			baseBuilder: baseBuilder{children: slices.Clone(n.children), style: n.style},
			nbtPath:     n.nbtPath,
			interpret:   n.interpret,
			separator:   n.separator,
		},
		pos: n.pos,
	}
}

func (n *BlockNBT) component() {}

// EntityNBT sources NBT data from the entities matched by a selector.
type EntityNBT struct {
	children  []Component
	style     Style
	nbtPath   string
	interpret bool
	separator Component
	selector  string
}

func (n *EntityNBT) Kind() Kind            { return KindEntityNBT }
func (n *EntityNBT) Children() []Component { return slices.Clone(n.children) }
func (n *EntityNBT) Style() Style          { return n.style }
func (n *EntityNBT) NBTPath() string       { return n.nbtPath }
func (n *EntityNBT) Interpret() bool       { return n.interpret }
func (n *EntityNBT) Separator() Component  { return n.separator }
func (n *EntityNBT) Selector() string      { return n.selector }

func (n *EntityNBT) WithNBTPath(nbtPath string) *EntityNBT {
	if n.nbtPath == nbtPath {
		return n
	}
	out := *n
	out.nbtPath = nbtPath
	return &out
}

func (n *EntityNBT) WithInterpret(interpret bool) *EntityNBT {
	if n.interpret == interpret {
		return n
	}
	out := *n
	out.interpret = interpret
	return &out
}

func (n *EntityNBT) WithSeparator(separator Component) *EntityNBT {
	if componentEqual(n.separator, separator) {
		return n
	}
	out := *n
	out.separator = separator
	return &out
}

func (n *EntityNBT) WithSelector(selector string) *EntityNBT {
	if n.selector == selector {
		return n
	}
	out := *n
	out.selector = selector
	return &out
}

func (n *EntityNBT) WithChildren(children ...Component) Component {
	out := *n
	out.children = normalize(children, true)
	return &out
}

func (n *EntityNBT) Append(children ...Component) Component {
	added := normalize(children, true)
	if len(added) == 0 {
		return n
	}
	out := *n
	out.children = append(slices.Clone(n.children), added...)
	return &out
}

func (n *EntityNBT) WithStyle(s Style) Component {
	out := *n
	out.style = s
	return &out
}

func (n *EntityNBT) Equal(other Component) bool {
	o, ok := other.(*EntityNBT)
	if !ok {
		return false
	}
	if n == o {
		return true
	}
	return n.nbtPath == o.nbtPath &&
		n.interpret == o.interpret &&
		n.selector == o.selector &&
		componentEqual(n.separator, o.separator) &&
		n.style.Equal(o.style) &&
		componentsEqual(n.children, o.children)
}

func (n *EntityNBT) ToBuilder() Builder {
	return &EntityNBTBuilder{
		nbtBuilder: nbtBuilder{
			baseBuilder: baseBuilder{children: slices.Clone(n.children), style: n.style},
			nbtPath:     n.nbtPath,
			interpret:   n.interpret,
			separator:   n.separator,
		},
		selector: n.selector,
	}
}

func (n *EntityNBT) component() {}

// StorageNBT sources NBT data from a named command storage.
type StorageNBT struct {
	children  []Component
	style     Style
	nbtPath   string
	interpret bool
	separator Component
	storage   Key
}

func (n *StorageNBT) Kind() Kind            { return KindStorageNBT }
func (n *StorageNBT) Children() []Component { return slices.Clone(n.children) }
func (n *StorageNBT) Style() Style          { return n.style }
func (n *StorageNBT) NBTPath() string       { return n.nbtPath }
func (n *StorageNBT) Interpret() bool       { return n.interpret }
func (n *StorageNBT) Separator() Component  { return n.separator }
func (n *StorageNBT) Storage() Key          { return n.storage }

func (n *StorageNBT) WithNBTPath(nbtPath string) *StorageNBT {
	if n.nbtPath == nbtPath {
		return n
	}
	out := *n
	out.nbtPath = nbtPath
	return &out
}

func (n *StorageNBT) WithInterpret(interpret bool) *StorageNBT {
	if n.interpret == interpret {
		return n
	}
	out := *n
	out.interpret = interpret
	return &out
}

func (n *StorageNBT) WithSeparator(separator Component) *StorageNBT {
	if componentEqual(n.separator, separator) {
		return n
	}
	out := *n
	out.separator = separator
	return &out
}

func (n *StorageNBT) WithStorage(storage Key) *StorageNBT {
	if n.storage == storage {
		return n
	}
	out := *n
	out.storage = storage
	return &out
}

func (n *StorageNBT) WithChildren(children ...Component) Component {
	out := *n
	out.children = normalize(children, true)
	return &out
}

func (n *StorageNBT) Append(children ...Component) Component {
	added := normalize(children, true)
	if len(added) == 0 {
		return n
	}
	out := *n
	out.children = append(slices.Clone(n.children), added...)
	return &out
}

func (n *StorageNBT) WithStyle(s Style) Component {
	out := *n
	out.style = s
	return &out
}

func (n *StorageNBT) Equal(other Component) bool {
	o, ok := other.(*StorageNBT)
	if !ok {
		return false
	}
	if n == o {
		return true
	}
	return n.nbtPath == o.nbtPath &&
		n.interpret == o.interpret &&
		n.storage == o.storage &&
		componentEqual(n.separator, o.separator) &&
		n.style.Equal(o.style) &&
		componentsEqual(n.children, o.children)
}

func (n *StorageNBT) ToBuilder() Builder {
	return &StorageNBTBuilder{
		nbtBuilder: nbtBuilder{
			baseBuilder: baseBuilder{children: slices.Clone(n.children), style: n.style},
			nbtPath:     n.nbtPath,
			interpret:   n.interpret,
			separator:   n.separator,
		},
		storage: n.storage,
	}
}

func (n *StorageNBT) component() {}

// nbtBuilder carries the builder fields shared by the NBT variants.
type nbtBuilder struct {
	baseBuilder
	nbtPath   string
	interpret bool
	separator Component
}

// BlockNBTBuilder builds BlockNBT components; path and pos are required.
type BlockNBTBuilder struct {
	nbtBuilder
	pos string
}

func NewBlockNBTBuilder() *BlockNBTBuilder { return &BlockNBTBuilder{} }

func (b *BlockNBTBuilder) NBTPath(nbtPath string) *BlockNBTBuilder {
	b.nbtPath = nbtPath
	return b
}

func (b *BlockNBTBuilder) Interpret(interpret bool) *BlockNBTBuilder {
	b.interpret = interpret
	return b
}

func (b *BlockNBTBuilder) Separator(separator Component) *BlockNBTBuilder {
	b.separator = separator
	return b
}

func (b *BlockNBTBuilder) Pos(pos string) *BlockNBTBuilder {
	b.pos = pos
	return b
}

func (b *BlockNBTBuilder) Children(children ...Component) *BlockNBTBuilder {
	b.setChildren(children)
	return b
}

func (b *BlockNBTBuilder) Append(children ...Component) *BlockNBTBuilder {
	b.appendChildren(children)
	return b
}

func (b *BlockNBTBuilder) Style(s Style) *BlockNBTBuilder {
	b.style = s
	return b
}

func (b *BlockNBTBuilder) Build() (Component, error) {
	var err error
	if b.nbtPath == "" {
		err = multierr.Append(err, errNBTPathNotSet)
	}
	if b.pos == "" {
		err = multierr.Append(err, errPosNotSet)
	}
	if err != nil {
		return nil, fmt.Errorf("block nbt: %w", err)
	}
	return &BlockNBT{
		children:  normalize(b.children, true),
		style:     b.style,
		nbtPath:   b.nbtPath,
		interpret: b.interpret,
		separator: b.separator,
		pos:       b.pos,
	}, nil
}

// EntityNBTBuilder builds EntityNBT components; path and selector are
// required.
type EntityNBTBuilder struct {
	nbtBuilder
	selector string
}

func NewEntityNBTBuilder() *EntityNBTBuilder { return &EntityNBTBuilder{} }

func (b *EntityNBTBuilder) NBTPath(nbtPath string) *EntityNBTBuilder {
	b.nbtPath = nbtPath
	return b
}

func (b *EntityNBTBuilder) Interpret(interpret bool) *EntityNBTBuilder {
	b.interpret = interpret
	return b
}

func (b *EntityNBTBuilder) Separator(separator Component) *EntityNBTBuilder {
	b.separator = separator
	return b
}

func (b *EntityNBTBuilder) Selector(selector string) *EntityNBTBuilder {
	b.selector = selector
	return b
}

func (b *EntityNBTBuilder) Children(children ...Component) *EntityNBTBuilder {
	b.setChildren(children)
	return b
}

func (b *EntityNBTBuilder) Append(children ...Component) *EntityNBTBuilder {
	b.appendChildren(children)
	return b
}

func (b *EntityNBTBuilder) Style(s Style) *EntityNBTBuilder {
	b.style = s
	return b
}

func (b *EntityNBTBuilder) Build() (Component, error) {
	var err error
	if b.nbtPath == "" {
		err = multierr.Append(err, errNBTPathNotSet)
	}
	if b.selector == "" {
		err = multierr.Append(err, errSelectorNotSet)
	}
	if err != nil {
		return nil, fmt.Errorf("entity nbt: %w", err)
	}
	return &EntityNBT{
		children:  normalize(b.children, true),
		style:     b.style,
		nbtPath:   b.nbtPath,
		interpret: b.interpret,
		separator: b.separator,
		selector:  b.selector,
	}, nil
}

// StorageNBTBuilder builds StorageNBT components; path and storage key are
// required.
type StorageNBTBuilder struct {
	nbtBuilder
	storage Key
}

func NewStorageNBTBuilder() *StorageNBTBuilder { return &StorageNBTBuilder{} }

func (b *StorageNBTBuilder) NBTPath(nbtPath string) *StorageNBTBuilder {
	b.nbtPath = nbtPath
	return b
}

func (b *StorageNBTBuilder) Interpret(interpret bool) *StorageNBTBuilder {
	b.interpret = interpret
	return b
}

func (b *StorageNBTBuilder) Separator(separator Component) *StorageNBTBuilder {
	b.separator = separator
	return b
}

func (b *StorageNBTBuilder) Storage(storage Key) *StorageNBTBuilder {
	b.storage = storage
	return b
}

func (b *StorageNBTBuilder) Children(children ...Component) *StorageNBTBuilder {
	b.setChildren(children)
	return b
}

func (b *StorageNBTBuilder) Append(children ...Component) *StorageNBTBuilder {
	b.appendChildren(children)
	return b
}

func (b *StorageNBTBuilder) Style(s Style) *StorageNBTBuilder {
	b.style = s
	return b
}

func (b *StorageNBTBuilder) Build() (Component, error) {
	var err error
	if b.nbtPath == "" {
		err = multierr.Append(err, errNBTPathNotSet)
	}
	if b.storage.IsZero() {
		err = multierr.Append(err, errStorageNotSet)
	}
	if err != nil {
		return nil, fmt.Errorf("storage nbt: %w", err)
	}
	return &StorageNBT{
		children:  normalize(b.children, true),
		style:     b.style,
		nbtPath:   b.nbtPath,
		interpret: b.interpret,
		separator: b.separator,
		storage:   b.storage,
	}, nil
}
