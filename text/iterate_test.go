package text_test

import (
	"slices"
	"testing"

	"richtext/text"
)

func contents(nodes []text.Component) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		switch v := n.(type) {
		case *text.Text:
			out = append(out, v.Content())
		case *text.Translatable:
			out = append(out, v.Key())
		default:
			out = append(out, n.Kind().String())
		}
	}
	return out
}

func TestWalkDepthFirst(t *testing.T) {
	tree := text.NewText("a",
		text.NewText("b", text.NewText("c")),
		text.NewText("d"))

	got := contents(slices.Collect(text.Walk(tree)))
	want := []string{"a", "b", "c", "d"}
	if !slices.Equal(got, want) {
		t.Errorf("Walk order = %v, want %v", got, want)
	}
}

func TestWalkBreadthFirst(t *testing.T) {
	tree := text.NewText("a",
		text.NewText("b", text.NewText("c")),
		text.NewText("d"))

	got := contents(slices.Collect(text.WalkBreadth(tree)))
	want := []string{"a", "b", "d", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("WalkBreadth order = %v, want %v", got, want)
	}
}

func TestWalkEmbeddedVisitsArgsAndSeparators(t *testing.T) {
	greet := mustBuild(t, text.NewTranslatableBuilder().
		Key("msg.greet").
		Args(text.NewText("Alice")))
	sel := mustBuild(t, text.NewSelectorBuilder().
		Pattern("@a").
		Separator(text.NewText(", ")))
	tree := text.NewText("root", greet, sel)

	got := contents(slices.Collect(text.WalkEmbedded(tree)))
	want := []string{"root", "msg.greet", "Alice", "selector", ", "}
	if !slices.Equal(got, want) {
		t.Errorf("WalkEmbedded order = %v, want %v", got, want)
	}

	// Plain Walk must skip embedded nodes.
	got = contents(slices.Collect(text.Walk(tree)))
	want = []string{"root", "msg.greet", "selector"}
	if !slices.Equal(got, want) {
		t.Errorf("Walk order = %v, want %v", got, want)
	}
}

func TestWalkStopsEarly(t *testing.T) {
	tree := text.NewText("a", text.NewText("b"), text.NewText("c"))

	var seen int
	for range text.Walk(tree) {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("seen = %d, want walk to stop after break", seen)
	}
}
