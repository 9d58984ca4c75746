package format

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApply(t *testing.T) {
	text := "a\nb\nc\nd\n"
	tests := []struct {
		name  string
		edits []Edit
		want  string
	}{
		{
			name:  "replace range",
			edits: []Edit{{Label: "x", StartLine: 2, EndLine: 3, NewText: "B\nC\nC2"}},
			want:  "a\nB\nC\nC2\nd\n",
		},
		{
			name:  "insert at top",
			edits: []Edit{{Label: "imports", StartLine: 1, EndLine: 0, NewText: "import 'dart:convert';\n"}},
			want:  "import 'dart:convert';\n\na\nb\nc\nd\n",
		},
		{
			name: "replace and insert at the same line",
			edits: []Edit{
				{Label: "imports", StartLine: 1, EndLine: 0, NewText: "z"},
				{Label: "x", StartLine: 1, EndLine: 2, NewText: "AB"},
			},
			want: "z\nAB\nc\nd\n",
		},
		{
			name: "two ranges",
			edits: []Edit{
				{Label: "x", StartLine: 1, EndLine: 1, NewText: "A"},
				{Label: "y", StartLine: 4, EndLine: 4, NewText: "D"},
			},
			want: "A\nb\nc\nD\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(text, tt.edits)
			if err != nil {
				t.Fatalf("Apply() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyOverlap(t *testing.T) {
	edits := []Edit{
		{Label: "x", StartLine: 1, EndLine: 3, NewText: "x"},
		{Label: "y", StartLine: 2, EndLine: 4, NewText: "y"},
	}
	if _, err := Apply("a\nb\nc\nd", edits); !errors.Is(err, ErrOverlap) {
		t.Errorf("Apply() error = %v, want ErrOverlap", err)
	}
}

func TestApplyOutOfRange(t *testing.T) {
	if _, err := Apply("a", []Edit{{Label: "x", StartLine: 1, EndLine: 5}}); err == nil {
		t.Error("Apply() error = nil for range past the end")
	}
}
