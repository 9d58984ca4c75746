package dart

import (
	"regexp"
	"strings"

	"github.com/DanWlker/dart-json-serializable-helper/dart/parser"
)

// File is the structural outline of one Dart source file.
type File struct {
	Lines   []string
	Classes []*Class
	Imports *Imports
	// Newline is the line ending of the source, "\n" or "\r\n".
	Newline string
}

// Class returns the class with the given name, or nil.
func (f *File) Class(name string) *Class {
	for _, c := range f.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ClassAt returns the class whose declaration spans line n.
func (f *File) ClassAt(n int) *Class {
	for _, c := range f.Classes {
		end := c.HeaderEndLine
		if end == 0 {
			end = c.StartLine
		}
		if c.StartLine <= n && n <= end {
			return c
		}
	}
	return nil
}

type scanState int

const (
	scanTopLevel scanState = iota
	scanHeader
	scanBody
	scanConstructor
)

var enumMarker = regexp.MustCompile(`(?i)//\s*enum`)

var nonFieldWords = []string{"static", "set", "get", "return", "factory"}

type scanner struct {
	lines   []string
	state   scanState
	depth   parser.Depth
	class   *Class
	header  strings.Builder
	classes []*Class
}

// Parse scans Dart source text line by line and returns its classes and
// directive block. The state objects of stateful widgets are left out. A
// class whose closing brace is never found is returned without an end line.
func Parse(text string) *File {
	newline := "\n"
	if strings.Contains(text, "\r\n") {
		newline = "\r\n"
	}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	s := &scanner{lines: lines}
	for i, line := range lines {
		s.scanLine(i+1, line)
	}
	if s.state != scanTopLevel && s.class != nil {
		logger().Debugf("class %s has no ending", s.class.Name)
	}

	return &File{
		Lines:   lines,
		Classes: s.classes,
		Imports: ParseImports(lines),
		Newline: newline,
	}
}

func isClassLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "class ") || strings.HasPrefix(trimmed, "abstract class ")
}

func (s *scanner) scanLine(n int, line string) {
	if isClassLine(line) {
		s.startClass(n, line)
	}

	switch s.state {
	case scanTopLevel:
		return
	case scanHeader:
		s.scanHeaderLine(n, line)
	case scanBody, scanConstructor:
		s.scanBodyLine(n, line)
	}
}

func (s *scanner) startClass(n int, line string) {
	s.depth.Reset()
	s.header.Reset()
	s.class = &Class{
		StartLine:   n,
		Abstract:    strings.HasPrefix(strings.TrimLeft(line, " \t"), "abstract "),
		Annotations: s.annotationsBefore(n),
	}
	s.state = scanHeader
}

// annotationsBefore collects the annotation lines directly above line n.
func (s *scanner) annotationsBefore(n int) []string {
	var annotations []string
	for i := n - 2; i >= 0; i-- {
		trimmed := strings.TrimSpace(s.lines[i])
		if !strings.HasPrefix(trimmed, "@") {
			break
		}
		annotations = append([]string{trimmed}, annotations...)
	}
	return annotations
}

func (s *scanner) scanHeaderLine(n int, line string) {
	c := s.class
	c.Lines = append(c.Lines, line)
	s.depth.Feed(line)

	code := parser.StripComment(line)
	if s.header.Len() > 0 {
		s.header.WriteByte(' ')
	}
	s.header.WriteString(strings.TrimSpace(code))

	switch {
	case parser.HasToken(code, parser.TokenLBrace):
		s.readDeclaration(s.header.String())
		c.HeaderEndLine = n
		if c.IsState() {
			logger().Debugf("skipping state class %s", c.Name)
		} else {
			s.classes = append(s.classes, c)
		}
		s.state = scanBody
		if s.depth.Brace <= 0 {
			s.endClass(n)
		}
	case parser.HasToken(code, parser.TokenSemicolon):
		// class A = B with C;
		s.state = scanTopLevel
		s.class = nil
	}
}

// readDeclaration walks the words of a class header:
// class Name<G> extends S with M1, M2 implements I1, I2 {
func (s *scanner) readDeclaration(header string) {
	c := s.class
	const (
		expectNone = iota
		expectName
		expectSuper
		expectMixin
		expectInterface
	)
	expect := expectNone
	for _, word := range parser.SplitDeclaration(header) {
		switch word {
		case "abstract":
			continue
		case "class":
			expect = expectName
			continue
		case "extends":
			expect = expectSuper
			continue
		case "with":
			expect = expectMixin
			continue
		case "implements":
			expect = expectInterface
			continue
		}

		switch expect {
		case expectName:
			if idx := strings.Index(word, "<"); idx >= 0 {
				// An unclosed list, as in a header still being typed, is dropped.
				if end := strings.LastIndex(word, ">"); end > idx {
					c.Generics = word[idx : end+1]
				}
				word = word[:idx]
			}
			c.Name = word
			expect = expectNone
		case expectSuper:
			c.Superclass = word
			expect = expectNone
		case expectMixin:
			if m := strings.TrimSpace(strings.TrimSuffix(word, ",")); m != "" {
				c.Mixins = append(c.Mixins, m)
			}
		case expectInterface:
			if i := strings.TrimSpace(strings.TrimSuffix(word, ",")); i != "" {
				c.Interfaces = append(c.Interfaces, i)
			}
		}
	}
	logger().Debugf("class %s at line %d", c.Name, c.StartLine)
}

func (s *scanner) scanBodyLine(n int, line string) {
	c := s.class
	c.Lines = append(c.Lines, line)
	before := s.depth
	s.depth.Feed(line)

	if s.state == scanBody && c.ConstructorStart == 0 && before.Brace == 1 && s.isConstructorStart(line) {
		c.ConstructorStart = n
		s.state = scanConstructor
	}
	if s.state == scanConstructor {
		if c.Constructor != "" {
			c.Constructor += "\n"
		}
		c.Constructor += line
		if s.depth.Paren <= 0 {
			c.ConstructorEnd = n
			s.state = scanBody
		}
	}

	if s.depth.Brace <= 0 {
		s.endClass(n)
		return
	}

	if s.depth.Paren == 0 && s.depth.Brace == 1 {
		if f := s.readField(n, line); f != nil {
			c.Fields = append(c.Fields, f)
		}
	}
}

func (s *scanner) isConstructorStart(line string) bool {
	trimmed := strings.TrimLeft(strings.Replace(line, "const", "", 1), " \t")
	return strings.HasPrefix(trimmed, s.class.Name+"(")
}

func (s *scanner) endClass(n int) {
	s.class.EndLine = n
	s.class = nil
	s.state = scanTopLevel
}

func (s *scanner) readField(n int, line string) *Field {
	c := s.class
	trimmed := strings.TrimSpace(line)
	if trimmed == "" ||
		strings.HasPrefix(trimmed, c.Name) ||
		strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*") {
		return nil
	}

	code := parser.StripComment(line)
	if parser.HasToken(code, parser.TokenLBrace, parser.TokenRBrace, parser.TokenArrow, parser.TokenAt) ||
		parser.HasWord(code, nonFieldWords...) {
		return nil
	}
	if parser.HasWord(code, "final") && parser.HasToken(code, parser.TokenAssign) {
		return nil
	}
	if c.ConstructorStart > 0 && !parser.HasWord(code, "final") {
		return nil
	}
	if strings.HasSuffix(stripSpace(code), ");") {
		return nil
	}

	var typ, name string
	var isFinal, isConst, isLate bool
	words := strings.Fields(code)
	for i, word := range words {
		switch {
		case word == "final":
			isFinal = true
			continue
		case word == "const" && i == 0:
			isConst = true
			continue
		case word == "late" && typ == "":
			isLate = true
			continue
		}

		isName := strings.HasSuffix(word, ";") || (i+1 < len(words) && words[i+1] == "=")
		isName = isName && !strings.ContainsAny(word, "()")
		switch {
		case isName:
			if name == "" {
				name = strings.TrimSuffix(word, ";")
				if idx := strings.Index(name, "="); idx >= 0 {
					name = name[:idx]
				}
			}
		case typ == "":
			typ = word
		case name == "":
			typ += " " + word
		}
	}
	if typ == "" || name == "" {
		return nil
	}

	f := NewField(typ, name, n, isFinal, isConst)
	f.IsLate = isLate
	if n > 1 {
		f.IsEnum = enumMarker.MatchString(s.lines[n-2])
	}
	return f
}
