package placeholder_test

import (
	"strings"
	"testing"

	"richtext/text/placeholder"
)

func TestLoadCatalog(t *testing.T) {
	input := `
greeting: "Hello"
farewell: Good bye
`
	r, err := placeholder.LoadCatalog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}

	if got := resolveText(t, r, "greeting"); got != "Hello" {
		t.Errorf("Resolve(greeting) = %q, want Hello", got)
	}
	if got := resolveText(t, r, "farewell"); got != "Good bye" {
		t.Errorf("Resolve(farewell) = %q, want Good bye", got)
	}
	if _, ok := r.Resolve("unknown"); ok {
		t.Error("unknown key must miss")
	}
}

func TestLoadCatalogEmptyInput(t *testing.T) {
	r, err := placeholder.LoadCatalog(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadCatalog(\"\") returned error: %v", err)
	}
	if r != placeholder.Empty() {
		t.Error("empty input must yield the empty resolver")
	}
}

func TestLoadCatalogRejectsNestedValues(t *testing.T) {
	input := `
greeting:
  nested: value
`
	if _, err := placeholder.LoadCatalog(strings.NewReader(input)); err == nil {
		t.Fatal("nested values must be rejected")
	}
}
