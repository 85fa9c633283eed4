package text

import "iter"

// Walk yields c and every descendant depth-first, parents before children.
func Walk(c Component) iter.Seq[Component] {
	return func(yield func(Component) bool) {
		walk(c, yield, false)
	}
}

// WalkEmbedded is Walk extended to embedded nodes: translation arguments
// and separators are visited right after their owner, before its children.
func WalkEmbedded(c Component) iter.Seq[Component] {
	return func(yield func(Component) bool) {
		walk(c, yield, true)
	}
}

// WalkBreadth yields c and every descendant breadth-first, so all nodes of
// one depth come before any node of the next.
func WalkBreadth(c Component) iter.Seq[Component] {
	return func(yield func(Component) bool) {
		queue := []Component{c}
		for len(queue) > 0 {
			next := queue[0]
			queue = queue[1:]
			if next == nil {
				continue
			}
			if !yield(next) {
				return
			}
			queue = append(queue, next.Children()...)
		}
	}
}

func walk(c Component, yield func(Component) bool, embedded bool) bool {
	if c == nil {
		return true
	}
	if !yield(c) {
		return false
	}
	if embedded {
		for _, e := range embeddedNodes(c) {
			if !walk(e, yield, embedded) {
				return false
			}
		}
	}
	for _, child := range c.Children() {
		if !walk(child, yield, embedded) {
			return false
		}
	}
	return true
}

// embeddedNodes lists the nodes a component carries outside its child
// sequence.
func embeddedNodes(c Component) []Component {
	switch v := c.(type) {
	case *Translatable:
		return v.Args()
	case *Selector:
		if v.Separator() != nil {
			return []Component{v.Separator()}
		}
	case *BlockNBT:
		if v.Separator() != nil {
			return []Component{v.Separator()}
		}
	case *EntityNBT:
		if v.Separator() != nil {
			return []Component{v.Separator()}
		}
	case *StorageNBT:
		if v.Separator() != nil {
			return []Component{v.Separator()}
		}
	}
	return nil
}
