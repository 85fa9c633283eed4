package debug

import (
	"strings"
	"testing"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{
			name:   "no depth",
			depth:  0,
			format: "text",
			want:   "text\n",
		},
		{
			name:   "depth 2",
			depth:  2,
			format: "nested",
			want:   "    nested\n",
		},
		{
			name:   "with formatting",
			depth:  1,
			format: "args: %d",
			args:   []any{2},
			want:   "  args: 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Quoted(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{
			name:  "empty value stays bare",
			depth: 0,
			label: "content",
			value: "",
			want:  "content: \n",
		},
		{
			name:  "plain value",
			depth: 1,
			label: "content",
			value: "hello",
			want:  "  content: \"hello\"\n",
		},
		{
			name:  "escapes stay on one line",
			depth: 0,
			label: "content",
			value: "a\nb \"c\"",
			want:  "content: \"a\\nb \\\"c\\\"\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Quoted(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("Quoted() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Mixed(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "translatable")
	tw.Quoted(1, "key", "msg.greet")
	tw.Line(1, "args: %d", 2)
	tw.Quoted(2, "content", "Alice")

	got := tw.String()
	want := "translatable\n  key: \"msg.greet\"\n  args: 2\n    content: \"Alice\"\n"
	if got != want {
		t.Errorf("mixed output:\ngot:\n%s\nwant:\n%s", got, want)
	}

	if !strings.HasSuffix(got, "\n") {
		t.Error("output must end with newline")
	}
}
