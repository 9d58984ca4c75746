package generator

import "strings"

func (g *classGen) toString() {
	c := g.class
	if c.UsesEquatable() || g.opts.UseEquatable {
		g.appendOrReplace("stringify", "@override\nbool get stringify => true;", "bool get stringify")
		return
	}

	pairs := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		pairs[i] = f.Name + ": $" + f.Name
	}
	literal := "'" + c.Name + "(" + strings.Join(pairs, ", ") + ")'"

	var b block
	b.line(0, "@override")
	if c.FewFields() {
		b.line(0, "String toString() => ", literal, ";")
	} else {
		b.line(0, "String toString() {")
		b.line(1, "return ", literal, ";")
		b.line(0, "}")
	}
	g.appendOrReplace("toString", b.String(), "String toString()")
}
