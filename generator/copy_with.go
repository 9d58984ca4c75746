package generator

func (g *classGen) copyWith() {
	c := g.class
	named := c.HasNamedConstructor()

	var b block
	b.line(0, c.Type(), " copyWith({")
	for _, f := range c.Fields {
		typ := f.Type()
		if typ != "dynamic" {
			typ += "?"
		}
		b.line(1, typ, " ", f.Name, ",")
	}
	b.line(0, "}) {")
	b.line(1, "return ", c.Type(), "(")
	for _, f := range c.Fields {
		arg := f.Name + " ?? this." + f.Name
		if named {
			arg = f.Name + ": " + arg
		}
		b.line(2, arg, ",")
	}
	b.line(1, ");")
	b.line(0, "}")

	g.appendOrReplace("copyWith", b.String(), c.Name+" copyWith(")
}
