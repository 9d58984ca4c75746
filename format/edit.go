package format

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrOverlap = errors.New("overlapping edits")

// Edit replaces the 1-based, inclusive line range StartLine..EndLine of a
// file with NewText. An edit whose EndLine is StartLine-1 covers no lines and
// inserts NewText before StartLine.
type Edit struct {
	Label     string
	StartLine int
	EndLine   int
	NewText   string
}

func (e Edit) IsInsert() bool { return e.EndLine < e.StartLine }

func (e Edit) String() string {
	if e.IsInsert() {
		return fmt.Sprintf("%s: insert before line %d", e.Label, e.StartLine)
	}
	return fmt.Sprintf("%s: lines %d-%d", e.Label, e.StartLine, e.EndLine)
}

// Apply returns text with edits applied. Edits are applied from the bottom
// of the file up so that earlier line numbers stay valid.
func Apply(text string, edits []Edit) (string, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out, err := ApplyLines(lines, edits)
	if err != nil {
		return "", err
	}
	return strings.Join(out, "\n"), nil
}

func ApplyLines(lines []string, edits []Edit) ([]string, error) {
	sorted := append([]Edit(nil), edits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].StartLine != sorted[j].StartLine {
			return sorted[i].StartLine > sorted[j].StartLine
		}
		return !sorted[i].IsInsert() && sorted[j].IsInsert()
	})

	out := append([]string(nil), lines...)
	limit := len(out) + 1
	for _, e := range sorted {
		if e.StartLine < 1 || e.EndLine > len(lines) || e.EndLine < e.StartLine-1 {
			return nil, fmt.Errorf("apply %s: range outside of %d lines", e, len(lines))
		}
		if e.EndLine >= limit {
			return nil, fmt.Errorf("apply %s: %w", e, ErrOverlap)
		}
		replacement := strings.Split(e.NewText, "\n")
		tail := append([]string(nil), out[e.EndLine:]...)
		out = append(append(out[:e.StartLine-1], replacement...), tail...)
		limit = e.StartLine
	}
	return out, nil
}
