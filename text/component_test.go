package text_test

import (
	"testing"

	"richtext/text"
)

func mustBuild(t *testing.T, b text.Builder) text.Component {
	t.Helper()
	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	return c
}

func TestWithMethodsLeaveSourceUnchanged(t *testing.T) {
	child := text.NewText("child")
	orig := text.NewText("before", child)

	changed := orig.WithContent("after")

	if orig.Content() != "before" {
		t.Errorf("source content = %q, want %q", orig.Content(), "before")
	}
	if changed.Content() != "after" {
		t.Errorf("derived content = %q, want %q", changed.Content(), "after")
	}
	if got := changed.Children(); len(got) != 1 || !got[0].Equal(child) {
		t.Error("derived node must share the source child sequence by value")
	}

	styled := orig.WithStyle(text.EmptyStyle().WithColor(text.Red))
	if !orig.Style().IsEmpty() {
		t.Error("WithStyle mutated the source node")
	}
	if styled.Style().IsEmpty() {
		t.Error("WithStyle result lost the style")
	}
}

func TestIdentityShortCircuit(t *testing.T) {
	txt := text.NewText("a")
	if txt.WithContent("a") != txt {
		t.Error("WithContent with equal value must return the receiver")
	}

	sel := mustBuild(t, text.NewSelectorBuilder().Pattern("@a")).(*text.Selector)
	if sel.WithPattern("@a") != sel {
		t.Error("WithPattern with equal value must return the receiver")
	}
	if sel.WithSeparator(nil) != sel {
		t.Error("WithSeparator(nil) on nil separator must return the receiver")
	}
	sep := text.NewText(", ")
	withSep := sel.WithSeparator(sep)
	if withSep.WithSeparator(text.NewText(", ")) != withSep {
		t.Error("WithSeparator with value-equal separator must return the receiver")
	}

	storage := mustBuild(t, text.NewStorageNBTBuilder().
		NBTPath("a.b").
		Storage(text.ParseKey("store"))).(*text.StorageNBT)
	if storage.WithInterpret(false) != storage {
		t.Error("WithInterpret with equal flag must return the receiver")
	}
	if storage.WithNBTPath("a.b") != storage {
		t.Error("WithNBTPath with equal path must return the receiver")
	}
}

func TestChildNormalization(t *testing.T) {
	// Text keeps empty children, drops nil entries.
	txt := text.NewText("x", nil, text.Empty(), text.NewText("y"))
	if got := len(txt.Children()); got != 2 {
		t.Fatalf("text children = %d, want 2 (nil dropped, empty kept)", got)
	}

	// Selector drops empty children too.
	sel := mustBuild(t, text.NewSelectorBuilder().
		Pattern("@a").
		Children(nil, text.Empty(), text.NewText("", nil)))
	if got := len(sel.Children()); got != 0 {
		t.Fatalf("selector children = %d, want 0 (only absent-equivalent entries supplied)", got)
	}

	// Score accepts an empty child sequence outright.
	score := mustBuild(t, text.NewScoreBuilder().Name("player").Objective("obj"))
	if got := len(score.Children()); got != 0 {
		t.Fatalf("score children = %d, want 0", got)
	}

	// Normalized sequences never contain nil entries.
	for _, c := range txt.Children() {
		if c == nil {
			t.Fatal("normalized child sequence contains nil entry")
		}
	}
}

func TestWithChildrenCopiesInput(t *testing.T) {
	children := []text.Component{text.NewText("a"), text.NewText("b")}
	node := text.NewText("root").WithChildren(children...)

	children[0] = text.NewText("mutated")

	got := node.Children()
	if len(got) != 2 {
		t.Fatalf("children = %d, want 2", len(got))
	}
	if !got[0].Equal(text.NewText("a")) {
		t.Error("later mutation of the caller slice leaked into the node")
	}
}

func TestAppendSharesNothingWithSource(t *testing.T) {
	orig := text.NewText("root", text.NewText("a"))
	appended := orig.Append(text.NewText("b"), nil)

	if got := len(orig.Children()); got != 1 {
		t.Errorf("source children = %d, want 1", got)
	}
	if got := len(appended.Children()); got != 2 {
		t.Errorf("appended children = %d, want 2", got)
	}
	if orig.Append() != orig {
		t.Error("appending nothing must return the receiver")
	}
}

func TestDeepEquality(t *testing.T) {
	build := func() text.Component {
		return mustBuild(t, text.NewTranslatableBuilder().
			Key("msg.greet").
			Args(text.NewText("Alice")).
			Style(text.EmptyStyle().WithColor(text.Green)).
			Append(text.NewText("!", text.NewText("nested"))))
	}

	a, b := build(), build()
	if !a.Equal(b) {
		t.Error("independently built equal trees must compare equal")
	}

	diff := mustBuild(t, text.NewTranslatableBuilder().Key("msg.other"))
	if a.Equal(diff) {
		t.Error("trees with different keys must not compare equal")
	}
	if a.Equal(text.NewText("msg.greet")) {
		t.Error("different variants must never compare equal")
	}
}

func TestSeparatorCarriedAndCompared(t *testing.T) {
	sep := text.NewText(", ").WithStyle(text.EmptyStyle().WithColor(text.Gray))
	a := mustBuild(t, text.NewSelectorBuilder().Pattern("@e").Separator(sep)).(*text.Selector)
	b := mustBuild(t, text.NewSelectorBuilder().Pattern("@e").Separator(sep)).(*text.Selector)

	if !a.Equal(b) {
		t.Error("selectors with equal separators must compare equal")
	}
	if a.Equal(a.WithSeparator(nil)) {
		t.Error("separator presence must be part of equality")
	}
	if a.Separator() == nil || !a.Separator().Equal(sep) {
		t.Error("separator not carried through build")
	}
}

func TestEmptyComponent(t *testing.T) {
	if text.Empty() != text.Empty() {
		t.Error("Empty() must return the canonical instance")
	}
	if !text.NewText("").Equal(text.Empty()) {
		t.Error("a fresh empty text component must equal Empty()")
	}
	if text.Empty().Kind() != text.KindText {
		t.Errorf("Empty().Kind() = %v, want text", text.Empty().Kind())
	}
}

func TestKindStrings(t *testing.T) {
	kinds := map[text.Kind]string{
		text.KindText:         "text",
		text.KindTranslatable: "translatable",
		text.KindSelector:     "selector",
		text.KindScore:        "score",
		text.KindKeybind:      "keybind",
		text.KindBlockNBT:     "block-nbt",
		text.KindEntityNBT:    "entity-nbt",
		text.KindStorageNBT:   "storage-nbt",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
