package generator

import "strings"

// addEquatable makes the class extend or mix in Equatable. Classes whose
// superclass name contains "Base" are expected to bring it themselves.
func (g *classGen) addEquatable() {
	c := g.class
	if strings.Contains(c.Superclass, "Base") {
		return
	}

	g.imports.Require("package:equatable/equatable.dart")
	if c.UsesEquatable() {
		return
	}
	if c.Superclass != "" || g.opts.UseEquatableMixin {
		c.AddMixin("EquatableMixin")
	} else {
		c.SetSuperclass("Equatable")
	}
}

func (g *classGen) props() {
	c := g.class
	g.addEquatable()

	object := "Object"
	for _, f := range c.Fields {
		if f.IsNullable() {
			object = "Object?"
			break
		}
	}

	var b block
	b.line(0, "@override")
	if len(c.Fields) <= 4 {
		names := make([]string, len(c.Fields))
		for i, f := range c.Fields {
			names[i] = f.Name
		}
		b.line(0, "List<", object, "> get props => [", strings.Join(names, ", "), "];")
	} else {
		b.line(0, "List<", object, "> get props {")
		b.line(1, "return [")
		for _, f := range c.Fields {
			b.line(2, f.Name, ",")
		}
		b.line(1, "];")
		b.line(0, "}")
	}
	g.appendOrReplace("props", b.String(), "List<Object> get props")
}
