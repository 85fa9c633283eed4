package placeholder_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"richtext/text/placeholder"
)

func TestTracedLogsHitsAndMisses(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	inner := placeholder.Placeholders(placeholder.New("k", placeholder.TextReplacement("v")))

	r := placeholder.Traced(inner, zap.New(core))

	if got := resolveText(t, r, "k"); got != "v" {
		t.Fatalf("Resolve(k) = %q, want v (tracing must not alter results)", got)
	}
	if _, ok := r.Resolve("missing"); ok {
		t.Fatal("tracing must not alter misses")
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("logged %d entries, want 2", len(entries))
	}
	if entries[0].Message != "placeholder resolved" {
		t.Errorf("first entry = %q, want placeholder resolved", entries[0].Message)
	}
	if entries[1].Message != "placeholder miss" {
		t.Errorf("second entry = %q, want placeholder miss", entries[1].Message)
	}
	if got := entries[1].ContextMap()["key"]; got != "missing" {
		t.Errorf("miss entry key = %v, want missing", got)
	}
}

func TestTracedRequiresArguments(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("nil logger must panic")
		}
	}()
	placeholder.Traced(placeholder.Empty(), nil)
}
