package generator

import (
	"strings"

	"github.com/DanWlker/dart-json-serializable-helper/dart"
)

// ctorParam is one parameter of an existing constructor.
type ctorParam struct {
	// text is the parameter as written, leading comments included.
	text string
	// name is the parameter or field name, empty when none was recognised.
	name   string
	isThis bool
}

func parseCtorParams(params []string) []ctorParam {
	result := make([]ctorParam, 0, len(params))
	for _, text := range params {
		p := ctorParam{text: text}

		var code []string
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "//") {
				code = append(code, line)
			}
		}
		decl := strings.Join(code, " ")
		if idx := strings.Index(decl, "="); idx >= 0 {
			decl = decl[:idx]
		}
		decl = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(decl), "required "))

		switch {
		case strings.HasPrefix(decl, "this."):
			p.name = strings.TrimPrefix(decl, "this.")
			p.isThis = true
		case strings.HasPrefix(decl, "super."):
			p.name = strings.TrimPrefix(decl, "super.")
		default:
			if words := strings.Fields(decl); len(words) >= 2 {
				p.name = words[len(words)-1]
			}
		}
		result = append(result, p)
	}
	return result
}

func findCtorParam(params []ctorParam, name string) (ctorParam, bool) {
	for _, p := range params {
		if p.name == name {
			return p, true
		}
	}
	return ctorParam{}, false
}

// writeParam emits a possibly multi-line parameter at one level of indent.
func writeParam(b *block, text string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if i == len(lines)-1 {
			line += ","
		}
		b.line(1, line)
	}
}

func (g *classGen) constructor() error {
	c := g.class

	var old []ctorParam
	if c.HasConstructor() {
		params, err := c.ConstructorParams()
		if err != nil {
			return err
		}
		old = parseCtorParams(params)
	}

	var b block
	prefix := ""
	switch {
	case c.Constructor != "":
		if c.HasConstConstructor() {
			prefix = "const "
		}
	case c.IsWidget() || g.equatable():
		prefix = "const "
	}
	open, end := c.ConstructorBrackets()
	b.line(0, prefix, c.Name, "(", open)

	hasKey, superKey := false, false
	for _, p := range old {
		if p.name == "key" {
			hasKey = true
			superKey = superKey || strings.Contains(p.text, "super.key")
		}
	}
	if c.IsWidget() && !hasKey {
		b.line(1, "Key? key,")
	}

	for _, p := range old {
		if !p.isThis {
			writeParam(&b, p.text)
		}
	}

	named := open == "{"
	for _, f := range c.Fields {
		if p, ok := findCtorParam(old, f.Name); ok {
			if p.isThis {
				writeParam(&b, p.text)
			}
			continue
		}

		param := "this." + f.Name
		switch {
		case f.IsNullable():
			b.line(1, param, ",")
		case g.opts.Constructor.DefaultValues && (f.IsPrimitive() || f.IsCollection()) && f.RawType != "dynamic":
			b.line(1, param, " = ", f.DefaultValue(), ",")
		case named:
			b.line(1, "required ", param, ",")
		default:
			b.line(1, param, ",")
		}
	}

	tail := c.ConstructorTail()
	switch {
	case c.Constructor != "" && tail != "" && tail != ";":
		b.line(0, end, ") ", tail)
	case c.IsWidget() && !superKey:
		b.line(0, end, ") : super(key: key);")
	default:
		b.line(0, end, ");")
	}

	text := b.String()
	if !c.HasConstructor() {
		c.PendingConstructor = indent(text)
		logger().Debugf("%s: insert constructor", c.Name)
		return nil
	}
	if stripSpace(c.Constructor) == stripSpace(text) {
		return nil
	}
	c.ConstructorChanged = true
	c.AddReplacement(dart.Part{
		Label:       "constructor",
		StartLine:   c.ConstructorStart,
		EndLine:     c.ConstructorEnd,
		Current:     c.Constructor,
		Replacement: strings.TrimSuffix(indent(text), "\n"),
	})
	logger().Debugf("%s: replace constructor", c.Name)
	return nil
}
