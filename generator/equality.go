package generator

import (
	"strings"

	"github.com/DanWlker/dart-json-serializable-helper/dart"
)

var flutterImports = []string{
	"package:flutter/material.dart",
	"package:flutter/cupertino.dart",
	"package:flutter/widgets.dart",
}

// collectionEquals picks the deep equality helper for the collection fields
// of a plain Dart class: a list, map or set helper when all of them are of
// one kind, a generic one otherwise.
func collectionEquals(fields []*dart.Field) string {
	kind := dart.CollectionNone
	for _, f := range fields {
		if !f.IsCollection() {
			continue
		}
		if kind != dart.CollectionNone && kind != f.Collection() {
			return "collectionEquals"
		}
		kind = f.Collection()
	}
	switch kind {
	case dart.CollectionList:
		return "listEquals"
	case dart.CollectionMap:
		return "mapEquals"
	case dart.CollectionSet:
		return "setEquals"
	}
	return "collectionEquals"
}

func flutterEquals(f *dart.Field) string {
	switch f.Collection() {
	case dart.CollectionSet:
		return "setEquals"
	case dart.CollectionMap:
		return "mapEquals"
	}
	return "listEquals"
}

func (g *classGen) equality() {
	c := g.class
	flutter := g.opts.Project.Flutter

	hasCollection := false
	for _, f := range c.Fields {
		hasCollection = hasCollection || f.IsCollection()
	}

	fn := ""
	if hasCollection {
		if flutter {
			g.imports.Require("package:flutter/foundation.dart", flutterImports...)
		} else {
			g.imports.Require("package:collection/collection.dart")
			fn = collectionEquals(c.Fields)
		}
	}

	var b block
	b.line(0, "@override")
	b.line(0, "bool operator ==(covariant ", c.Type(), " other) {")
	b.line(1, "if (identical(this, other)) return true;")
	if fn != "" {
		b.line(1, "final ", fn, " = const DeepCollectionEquality().equals;")
	}
	b.line(0)
	b.line(1, "return")
	for i, f := range c.Fields {
		var cmp string
		switch {
		case f.IsCollection() && flutter:
			cmp = flutterEquals(f) + "(other." + f.Name + ", " + f.Name + ")"
		case f.IsCollection():
			cmp = fn + "(other." + f.Name + ", " + f.Name + ")"
		default:
			cmp = "other." + f.Name + " == " + f.Name
		}
		end := " &&"
		if i == len(c.Fields)-1 {
			end = ";"
		}
		b.line(2, cmp, end)
	}
	b.line(0, "}")

	g.appendOrReplace("equality", b.String(), "bool operator ==")
}

func (g *classGen) hashCode() {
	c := g.class
	jenkins := g.opts.HashCode.UseJenkins

	var b block
	b.line(0, "@override")
	switch {
	case jenkins:
		g.imports.Require("dart:ui", flutterImports...)
		b.line(0, "int get hashCode {")
		b.line(1, "return hashList([")
		for _, f := range c.Fields {
			b.line(2, f.Name, ",")
		}
		b.line(1, "]);")
		b.line(0, "}")
	case c.FewFields():
		hashes := make([]string, len(c.Fields))
		for i, f := range c.Fields {
			hashes[i] = f.Name + ".hashCode"
		}
		b.line(0, "int get hashCode => ", strings.Join(hashes, " ^ "), ";")
	default:
		b.line(0, "int get hashCode {")
		for i, f := range c.Fields {
			switch i {
			case 0:
				b.line(1, "return ", f.Name, ".hashCode ^")
			case len(c.Fields) - 1:
				b.line(2, f.Name, ".hashCode;")
			default:
				b.line(2, f.Name, ".hashCode ^")
			}
		}
		b.line(0, "}")
	}
	g.appendOrReplace("hashCode", b.String(), "int get hashCode")
}
