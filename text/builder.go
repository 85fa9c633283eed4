package text

import (
	"errors"
	"slices"
)

// Required-field build errors. Builders wrap these with the variant name.
var (
	errKeyNotSet       = errors.New("key must be set")
	errPatternNotSet   = errors.New("pattern must be set")
	errNameNotSet      = errors.New("name must be set")
	errObjectiveNotSet = errors.New("objective must be set")
	errKeybindNotSet   = errors.New("keybind must be set")
	errNBTPathNotSet   = errors.New("nbt path must be set")
	errPosNotSet       = errors.New("pos must be set")
	errSelectorNotSet  = errors.New("selector must be set")
	errStorageNotSet   = errors.New("storage must be set")
)

// baseBuilder carries the fields common to every component builder. The
// accumulated children are kept raw and only normalized by Build, so a
// builder can be mutated freely before the terminal call.
type baseBuilder struct {
	children []Component
	style    Style
}

func (b *baseBuilder) setChildren(children []Component) {
	b.children = slices.Clone(children)
}

func (b *baseBuilder) appendChildren(children []Component) {
	b.children = append(b.children, children...)
}
