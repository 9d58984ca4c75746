package generator

import (
	"strings"

	"github.com/DanWlker/dart-json-serializable-helper/dart"
	"github.com/DanWlker/dart-json-serializable-helper/dart/parser"
)

// FindPart locates the member of c whose signature starts with finder.
// Signatures are compared in normalized form, see parser.Normalize. Only
// members declared directly in the class body are considered. A block member
// ends where its braces close; an arrow member, or one without a body, ends
// at the first line ending in a semicolon.
func FindPart(c *dart.Class, label, finder string) (dart.Part, bool) {
	want := parser.Normalize(finder)
	part := dart.Part{Label: label}

	var depth parser.Depth
	var current []string
	arrow, opened := false, false

	for i, line := range c.Lines {
		n := c.StartLine + i
		before := depth
		depth.Feed(line)

		if part.StartLine == 0 {
			if n <= c.HeaderEndLine || before.Brace != 1 || before.Paren != 0 {
				continue
			}
			if !strings.HasPrefix(parser.Normalize(line), want) {
				continue
			}
			part.StartLine = n
			arrow = parser.HasToken(line, parser.TokenArrow)
		} else if !opened && !arrow && parser.HasToken(line, parser.TokenArrow) {
			arrow = true
		}
		current = append(current, line)

		if depth.Brace >= 2 {
			opened = true
		}
		code := strings.TrimSpace(parser.StripComment(line))
		switch {
		case opened && depth.Brace <= 1:
		case !opened && depth.Brace == 1 && depth.Paren == 0 && strings.HasSuffix(code, ";"):
		case arrow && strings.HasSuffix(code, ";"):
		default:
			continue
		}
		part.EndLine = n
		part.Current = strings.Join(current, "\n")
		return part, true
	}
	return dart.Part{}, false
}
