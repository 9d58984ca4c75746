package dart

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/DanWlker/dart-json-serializable-helper/dart/parser"
)

var (
	ErrNoFields        = errors.New("Class must have at least one property!")
	ErrNoEnding        = errors.New("Class has no ending!")
	ErrDuplicateFields = errors.New("Class doesn't have unique property names!")

	// ErrContract reports a request that a well-formed caller never makes,
	// such as assembling a class whose line range was never closed.
	ErrContract = errors.New("contract violation")
)

// Part is a region of a class body: an existing member that was found by its
// finder signature, together with the text that should replace it.
type Part struct {
	Label string
	// StartLine and EndLine are 1-based and inclusive.
	StartLine   int
	EndLine     int
	Current     string
	Replacement string
}

// Class is one class declaration discovered in a source file, along with the
// edits pending against it.
type Class struct {
	Name string
	// Generics is the generic parameter list as written, bounds included.
	Generics   string
	Superclass string
	Mixins     []string
	Interfaces []string
	Abstract   bool

	// Annotations are the annotation lines directly above the declaration.
	Annotations []string

	Fields []*Field

	// Constructor is the raw text of the unnamed constructor, if one exists.
	Constructor      string
	ConstructorStart int
	ConstructorEnd   int

	// StartLine is the declaration line, HeaderEndLine the line holding the
	// opening brace of the body and EndLine the line of the closing brace.
	StartLine     int
	HeaderEndLine int
	EndLine       int

	// Lines holds the source lines StartLine..EndLine.
	Lines []string

	Replacements []Part
	Insertions   string
	// PendingConstructor is set when no constructor existed and one must be
	// inserted after the last field.
	PendingConstructor string
	// ConstructorChanged marks that an existing constructor is replaced.
	ConstructorChanged bool
	// PendingAnnotations are emitted above the declaration.
	PendingAnnotations []string

	headerChanged bool
}

// Type is the class name applied to its generic parameters, without bounds:
// Pair<A extends Comparable<A>, B> has type Pair<A, B>.
func (c *Class) Type() string {
	params := c.GenericParams()
	if len(params) == 0 {
		return c.Name
	}
	return c.Name + "<" + strings.Join(params, ", ") + ">"
}

func (c *Class) GenericParams() []string {
	g := strings.TrimSpace(c.Generics)
	if !strings.HasPrefix(g, "<") || !strings.HasSuffix(g, ">") {
		return nil
	}
	var params []string
	for _, p := range parser.TopLevelSplit(g[1:len(g)-1], ',') {
		p = strings.TrimSpace(p)
		if idx := strings.Index(p, " extends "); idx >= 0 {
			p = strings.TrimSpace(p[:idx])
		}
		if p != "" {
			params = append(params, p)
		}
	}
	return params
}

func (c *Class) IsWidget() bool {
	return c.Superclass == "StatelessWidget" || c.Superclass == "StatefulWidget"
}

func (c *Class) IsStatelessWidget() bool {
	return c.Superclass == "StatelessWidget"
}

// IsState reports whether the class is the state object of a stateful widget.
func (c *Class) IsState() bool {
	return !c.IsWidget() && strings.HasPrefix(c.Superclass, "State<")
}

func (c *Class) UsesEquatable() bool {
	if c.Superclass == "Equatable" {
		return true
	}
	return c.HasMixin("EquatableMixin")
}

func (c *Class) HasMixin(name string) bool {
	for _, m := range c.Mixins {
		if m == name {
			return true
		}
	}
	return false
}

// AddMixin appends a mixin to the declaration unless it is already present.
func (c *Class) AddMixin(name string) {
	if c.HasMixin(name) {
		return
	}
	c.Mixins = append(c.Mixins, name)
	c.headerChanged = true
}

func (c *Class) SetSuperclass(name string) {
	if c.Superclass == name {
		return
	}
	c.Superclass = name
	c.headerChanged = true
}

// FewFields selects the short, single-expression forms of generated members.
func (c *Class) FewFields() bool { return len(c.Fields) <= 3 }

func (c *Class) HasConstructor() bool {
	return c.Constructor != "" && c.ConstructorStart > 0 && c.ConstructorEnd > 0
}

// HasNamedConstructor reports whether the constructor takes named parameters.
// A class without a constructor gets a named one.
func (c *Class) HasNamedConstructor() bool {
	if c.Constructor == "" {
		return true
	}
	ctor := strings.TrimLeft(strings.Replace(c.Constructor, "const", "", 1), " \t")
	return strings.HasPrefix(ctor, c.Name+"({")
}

func (c *Class) HasConstConstructor() bool {
	return strings.HasPrefix(strings.TrimSpace(c.Constructor), "const ")
}

func (c *Class) HasEnding() bool { return c.EndLine > 0 }

// FieldsEndLine is the line of the last field, or 0 without fields.
func (c *Class) FieldsEndLine() int {
	if len(c.Fields) == 0 {
		return 0
	}
	return c.Fields[len(c.Fields)-1].Line
}

func (c *Class) UniqueFieldNames() bool {
	seen := make(map[string]bool, len(c.Fields))
	for _, f := range c.Fields {
		if seen[f.Name] {
			return false
		}
		seen[f.Name] = true
	}
	return true
}

// Validate reports why the class cannot be converted, or nil.
func (c *Class) Validate() error {
	var reason error
	switch {
	case len(c.Fields) == 0:
		reason = ErrNoFields
	case !c.HasEnding():
		reason = ErrNoEnding
	case !c.UniqueFieldNames():
		reason = ErrDuplicateFields
	default:
		return nil
	}
	return fmt.Errorf("%s couldn't be converted to a data class: %w", c.Name, reason)
}

func (c *Class) IsValid() bool { return c.Validate() == nil }

// Issue is the diagnostic message for the class.
func (c *Class) Issue() string {
	if err := c.Validate(); err != nil {
		return err.Error()
	}
	return c.Name + " couldn't be converted to a data class."
}

func (c *Class) Text() string {
	return strings.Join(c.Lines, "\n")
}

// Line returns source line n of the file, which must lie inside the class.
func (c *Class) Line(n int) string {
	idx := n - c.StartLine
	if idx < 0 || idx >= len(c.Lines) {
		return ""
	}
	return c.Lines[idx]
}

// ReplacementAt returns the replacement covering line n.
func (c *Class) ReplacementAt(n int) (Part, bool) {
	for _, p := range c.Replacements {
		if p.StartLine <= n && n <= p.EndLine {
			return p, true
		}
	}
	return Part{}, false
}

func (c *Class) AddReplacement(p Part) {
	c.Replacements = append(c.Replacements, p)
}

func (c *Class) AddInsertion(text string) {
	c.Insertions += text
}

// Changed reports whether any edit is pending for the class.
// HasAnnotation reports whether the class is annotated with @name, with or
// without arguments.
func (c *Class) HasAnnotation(name string) bool {
	for _, a := range slices.Concat(c.Annotations, c.PendingAnnotations) {
		rest, ok := strings.CutPrefix(a, "@"+name)
		if ok && (rest == "" || strings.HasPrefix(rest, "(")) {
			return true
		}
	}
	return false
}

func (c *Class) AddAnnotation(annotation string) {
	c.PendingAnnotations = append(c.PendingAnnotations, annotation)
}

func (c *Class) Changed() bool {
	return c.Insertions != "" ||
		len(c.PendingAnnotations) > 0 ||
		len(c.Replacements) > 0 ||
		c.PendingConstructor != "" ||
		c.ConstructorChanged ||
		c.headerChanged
}

// DeclarationLine renders the class declaration from the current metadata,
// ending with the opening brace of the body.
func (c *Class) DeclarationLine() string {
	var sb strings.Builder
	if c.Abstract {
		sb.WriteString("abstract ")
	}
	sb.WriteString("class ")
	sb.WriteString(c.Name)
	sb.WriteString(c.Generics)
	if c.Superclass != "" {
		sb.WriteString(" extends ")
		sb.WriteString(c.Superclass)
	}
	if len(c.Mixins) > 0 {
		sb.WriteString(" with ")
		sb.WriteString(strings.Join(c.Mixins, ", "))
	}
	if len(c.Interfaces) > 0 {
		sb.WriteString(" implements ")
		sb.WriteString(strings.Join(c.Interfaces, ", "))
	}
	sb.WriteString(" {")
	return sb.String()
}

// ConstructorParams splits the parameter list of the existing constructor
// into its top-level parameters, with surrounding whitespace removed.
func (c *Class) ConstructorParams() ([]string, error) {
	if !c.HasConstructor() {
		return nil, fmt.Errorf("constructor params of %s: %w", c.Name, ErrContract)
	}
	open := strings.Index(c.Constructor, "(")
	end := matchingParen(c.Constructor, open)
	if open < 0 || end < 0 {
		return nil, fmt.Errorf("constructor params of %s: %w", c.Name, ErrContract)
	}
	inner := strings.TrimSpace(c.Constructor[open+1 : end])
	inner = strings.TrimPrefix(inner, "{")
	inner = strings.TrimPrefix(inner, "[")
	inner = strings.TrimSuffix(inner, "}")
	inner = strings.TrimSuffix(inner, "]")

	var params []string
	for _, p := range parser.TopLevelSplit(inner, ',') {
		if p = strings.TrimSpace(p); p != "" {
			params = append(params, p)
		}
	}
	return params, nil
}

// ConstructorTail is the text following the parameter list of the existing
// constructor: an initializer list, a body or just the semicolon.
func (c *Class) ConstructorTail() string {
	open := strings.Index(c.Constructor, "(")
	end := matchingParen(c.Constructor, open)
	if end < 0 {
		return ";"
	}
	return strings.TrimSpace(c.Constructor[end+1:])
}

// ConstructorBrackets returns the opening and closing bracket of the
// constructor parameter list: "{" "}", "[" "]" or "" "".
func (c *Class) ConstructorBrackets() (string, string) {
	if c.Constructor == "" {
		return "{", "}"
	}
	open := strings.Index(c.Constructor, "(")
	if open < 0 {
		return "", ""
	}
	rest := strings.TrimLeft(c.Constructor[open+1:], " \t\r\n")
	switch {
	case strings.HasPrefix(rest, "{"):
		return "{", "}"
	case strings.HasPrefix(rest, "["):
		return "[", "]"
	}
	return "", ""
}

func matchingParen(s string, open int) int {
	if open < 0 {
		return -1
	}
	depth := 0
	for _, tok := range parser.Tokenize(s[open:]) {
		switch tok.Kind {
		case parser.TokenLParen:
			depth++
		case parser.TokenRParen:
			depth--
			if depth == 0 {
				return open + tok.Span.Start.Offset
			}
		}
	}
	return -1
}
