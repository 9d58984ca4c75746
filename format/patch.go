package format

import (
	"fmt"
	"strings"

	"github.com/DanWlker/dart-json-serializable-helper/dart"
	"github.com/DanWlker/dart-json-serializable-helper/dart/parser"
)

// Assemble rebuilds the source of a class from its pending edits. The
// result replaces the lines StartLine..EndLine of the file.
//
// The declaration is rendered from the class metadata, a pending constructor
// follows the last field, inserted members precede the closing brace and
// replaced regions are substituted once each.
func Assemble(c *dart.Class) (string, error) {
	if c.StartLine == 0 || c.EndLine == 0 {
		return "", fmt.Errorf("assemble %s: no line range: %w", c.Name, dart.ErrContract)
	}
	headerEnd := c.HeaderEndLine
	if headerEnd == 0 {
		headerEnd = c.StartLine
	}

	var out []string
	emitted := make(map[int]bool)
	for n := c.StartLine; n <= c.EndLine; n++ {
		line := c.Line(n)
		switch {
		case n == c.StartLine:
			for _, a := range c.PendingAnnotations {
				out = append(out, leadingSpace(line)+a)
			}
			out = append(out, declaration(c, c.Line(headerEnd)))
		case n <= headerEnd:
			// folded into the declaration
		case n == c.FieldsEndLine() && c.PendingConstructor != "":
			out = append(out, line, "")
			out = append(out, splitBlock(c.PendingConstructor)...)
		case n == c.EndLine:
			if c.Insertions != "" {
				out = append(out, splitBlock(c.Insertions)...)
			}
			out = append(out, line)
		default:
			idx := replacementIndex(c, n)
			if idx < 0 {
				out = append(out, line)
				continue
			}
			if !emitted[idx] {
				out = append(out, splitBlock(c.Replacements[idx].Replacement)...)
				emitted[idx] = true
			}
		}
	}
	return strings.Join(out, "\n"), nil
}

// declaration renders the class line, keeping the indentation of the
// original and any text after the opening brace of the body.
func declaration(c *dart.Class, braceLine string) string {
	decl := leadingSpace(c.Line(c.StartLine)) + c.DeclarationLine()

	for _, tok := range parser.Tokenize(braceLine) {
		if tok.Kind != parser.TokenLBrace {
			continue
		}
		if rest := strings.TrimSpace(braceLine[tok.Span.End.Offset:]); rest != "" {
			decl += " " + rest
		}
		break
	}
	return decl
}

func leadingSpace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

func replacementIndex(c *dart.Class, n int) int {
	for i, p := range c.Replacements {
		if p.StartLine <= n && n <= p.EndLine {
			return i
		}
	}
	return -1
}

func splitBlock(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
