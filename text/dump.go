package text

import (
	"strings"

	"richtext/utils/debug"
)

// Dump returns a readable tree listing of a component and its subtree. It
// exists solely for manual inspection during debugging and is not a
// serialization format.
func Dump(c Component) string {
	if c == nil {
		return "<nil component>\n"
	}
	tw := debug.NewTreeWriter()
	dumpNode(tw, 0, "", c)
	return tw.String()
}

func dumpNode(tw *debug.TreeWriter, depth int, label string, c Component) {
	head := c.Kind().String()
	if label != "" {
		head = label + " " + head
	}
	tw.Line(depth, "%s", head)

	switch v := c.(type) {
	case *Text:
		tw.Quoted(depth+1, "content", v.Content())
	case *Translatable:
		tw.Quoted(depth+1, "key", v.Key())
		if args := v.Args(); len(args) > 0 {
			tw.Line(depth+1, "args: %d", len(args))
			for _, a := range args {
				dumpNode(tw, depth+2, "arg", a)
			}
		}
	case *Selector:
		tw.Quoted(depth+1, "pattern", v.Pattern())
		if v.Separator() != nil {
			dumpNode(tw, depth+1, "separator", v.Separator())
		}
	case *Score:
		tw.Quoted(depth+1, "name", v.Name())
		tw.Quoted(depth+1, "objective", v.Objective())
	case *Keybind:
		tw.Quoted(depth+1, "keybind", v.Keybind())
	case *BlockNBT:
		tw.Quoted(depth+1, "nbt-path", v.NBTPath())
		tw.Quoted(depth+1, "pos", v.Pos())
		tw.Line(depth+1, "interpret: %t", v.Interpret())
		if v.Separator() != nil {
			dumpNode(tw, depth+1, "separator", v.Separator())
		}
	case *EntityNBT:
		tw.Quoted(depth+1, "nbt-path", v.NBTPath())
		tw.Quoted(depth+1, "selector", v.Selector())
		tw.Line(depth+1, "interpret: %t", v.Interpret())
		if v.Separator() != nil {
			dumpNode(tw, depth+1, "separator", v.Separator())
		}
	case *StorageNBT:
		tw.Quoted(depth+1, "nbt-path", v.NBTPath())
		tw.Quoted(depth+1, "storage", v.Storage().String())
		tw.Line(depth+1, "interpret: %t", v.Interpret())
		if v.Separator() != nil {
			dumpNode(tw, depth+1, "separator", v.Separator())
		}
	}

	if s := describeStyle(c.Style()); s != "" {
		tw.Line(depth+1, "style: %s", s)
	}

	for _, child := range c.Children() {
		dumpNode(tw, depth+1, "", child)
	}
}

// describeStyle summarizes the explicitly set or unset attributes of a
// style on one line; an all-inheriting style yields "".
func describeStyle(s Style) string {
	var parts []string

	add := func(name string, a attrState, value string) {
		switch a {
		case attrSet:
			parts = append(parts, name+"="+value)
		case attrUnset:
			parts = append(parts, name+"=unset")
		}
	}

	add("color", s.color.state, s.color.value.String())
	for _, d := range Decorations() {
		attr := s.decorations[d]
		if attr.value {
			add(d.String(), attr.state, "true")
		} else {
			add(d.String(), attr.state, "false")
		}
	}
	add("click", s.click.state, s.click.value.Action().String())
	add("hover", s.hover.state, s.hover.value.Action().String())
	add("font", s.font.state, s.font.value.String())
	add("insertion", s.insertion.state, s.insertion.value)

	if _, ok := s.Parent(); ok {
		parts = append(parts, "parent=yes")
	}
	return strings.Join(parts, " ")
}
