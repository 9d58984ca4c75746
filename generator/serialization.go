package generator

import (
	"strings"

	"github.com/DanWlker/dart-json-serializable-helper/dart"
)

func nullSafe(f *dart.Field) string {
	if f.IsNullable() {
		return "?"
	}
	return ""
}

// toMapValue converts a single (non-collection) value named name.
func toMapValue(f *dart.Field, name string) string {
	switch f.Type() {
	case "DateTime":
		return name + nullSafe(f) + ".millisecondsSinceEpoch"
	case "Color":
		return name + nullSafe(f) + ".value"
	case "IconData":
		return name + nullSafe(f) + ".codePoint"
	}
	if f.IsEnum {
		return name + nullSafe(f) + ".index"
	}
	if f.IsPrimitive() {
		return name
	}
	return name + nullSafe(f) + ".toMap()"
}

func toMapEntry(f *dart.Field) string {
	if !f.IsCollection() {
		return toMapValue(f, f.Name)
	}
	if f.IsMap() {
		return f.Name
	}

	elem := f.Element()
	elem.IsEnum = f.IsEnum
	if elem.IsPrimitive() && !f.IsEnum {
		if f.IsSet() {
			return f.Name + nullSafe(f) + ".toList()"
		}
		return f.Name
	}
	return f.Name + nullSafe(f) + ".map((x) => " + toMapValue(elem, "x") + ").toList()"
}

func (g *classGen) toMap() {
	c := g.class

	var b block
	b.line(0, "Map<String, dynamic> toMap() {")
	b.line(1, "return <String, dynamic>{")
	for _, f := range c.Fields {
		b.line(2, "'", f.SourceName, "': ", toMapEntry(f), ",")
	}
	b.line(1, "};")
	b.line(0, "}")

	g.appendOrReplace("toMap", b.String(), "Map<String, dynamic> toMap()")
}

// fromMapValue reads a single (non-collection) value from the expression
// value. withDefault guards the read with the default of the type.
func (g *classGen) fromMapValue(f *dart.Field, value string, withDefault bool) string {
	orZero := func(v string) string {
		if withDefault {
			return "(" + v + " ?? 0)"
		}
		return v
	}

	switch f.Type() {
	case "DateTime":
		return "DateTime.fromMillisecondsSinceEpoch(" + orZero(value) + " as int)"
	case "Color":
		return "Color(" + orZero(value) + " as int)"
	case "IconData":
		return "IconData(" + orZero(value) + " as int, fontFamily: 'MaterialIcons')"
	}
	if f.IsEnum {
		return f.Type() + ".values[" + orZero(value) + " as int]"
	}
	if !f.IsPrimitive() {
		return f.Type() + ".fromMap(" + value + " as Map<String, dynamic>)"
	}

	if f.Type() == "dynamic" {
		return value
	}
	if withDefault {
		value = "(" + value + " ?? " + f.DefaultValue() + ")"
	}
	if g.opts.FromMap.CoerceNumbers {
		switch f.Type() {
		case "int":
			return "(" + value + " as num).toInt()"
		case "double":
			return "(" + value + " as num).toDouble()"
		}
	}
	return value + " as " + f.Type()
}

func (g *classGen) fromMapEntry(f *dart.Field) string {
	value := "map['" + f.SourceName + "']"
	withDefault := g.opts.FromMap.DefaultValues && !f.IsNullable()

	var expr string
	switch {
	case f.IsMap():
		if withDefault {
			value = "(" + value + " ?? const {})"
		}
		expr = f.Type() + ".from(" + value + " as Map)"
	case f.IsCollection():
		if withDefault {
			value = "(" + value + " ?? const [])"
		}
		elem := f.Element()
		elem.IsEnum = f.IsEnum
		list := "(" + value + " as List)"
		if elem.IsPrimitive() && !elem.IsEnum && !g.coerces(elem) {
			expr = f.Type() + ".from(" + value + " as List)"
			break
		}
		x := g.fromMapValue(elem, "x", false)
		if elem.IsNullable() {
			x = "x != null ? " + x + " : null"
		}
		expr = f.Type() + ".from(" + list + ".map<" + elem.RawType + ">((x) => " + x + "))"
	default:
		expr = g.fromMapValue(f, value, withDefault)
	}

	if f.IsNullable() {
		return value + " != null ? " + expr + " : null"
	}
	return expr
}

func (g *classGen) coerces(f *dart.Field) bool {
	return g.opts.FromMap.CoerceNumbers && (f.Type() == "int" || f.Type() == "double")
}

func (g *classGen) fromMap() {
	c := g.class
	named := c.HasNamedConstructor()

	var b block
	b.line(0, "factory ", c.Name, ".fromMap(Map<String, dynamic> map) {")
	b.line(1, "return ", c.Type(), "(")
	for _, f := range c.Fields {
		arg := g.fromMapEntry(f)
		if named {
			arg = f.Name + ": " + arg
		}
		b.line(2, arg, ",")
	}
	b.line(1, ");")
	b.line(0, "}")

	g.appendOrReplace("fromMap", b.String(), "factory "+c.Name+".fromMap(Map<String, dynamic> map)")
}

func (g *classGen) toJson() {
	g.imports.Require("dart:convert")
	g.appendOrReplace("toJson", "String toJson() => json.encode(toMap());", "String toJson()")
}

func (g *classGen) fromJson() {
	c := g.class
	g.imports.Require("dart:convert")

	var sb strings.Builder
	sb.WriteString("factory ")
	sb.WriteString(c.Name)
	sb.WriteString(".fromJson(String source) => ")
	sb.WriteString(c.Name)
	sb.WriteString(".fromMap(json.decode(source) as Map<String, dynamic>);")
	g.appendOrReplace("fromJson", sb.String(), "factory "+c.Name+".fromJson(String source)")
}
