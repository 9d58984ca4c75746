package generator

import "strings"

// indent shifts every non-blank line of s by two spaces. The result ends
// with a newline.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

// block accumulates the lines of a generated member.
type block struct {
	sb strings.Builder
}

func (b *block) line(depth int, parts ...string) {
	b.sb.WriteString(strings.Repeat("  ", depth))
	for _, p := range parts {
		b.sb.WriteString(p)
	}
	b.sb.WriteByte('\n')
}

func (b *block) String() string {
	return strings.TrimSuffix(b.sb.String(), "\n")
}
