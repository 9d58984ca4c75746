package generator

import (
	"path/filepath"
	"strings"
)

const jsonAnnotationImport = "package:json_annotation/json_annotation.dart"

// partFile names the generated part file of a source file, as in
// "user.dart" -> "user.g.dart".
func partFile(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".g.dart"
}

// jsonSerializable prepares the class for json_serializable: the annotation
// import and part directive, the @JsonSerializable() annotation, a
// constructor, and fromJson/toJson members that delegate to the generated
// helpers.
func (g *classGen) jsonSerializable() error {
	c := g.class

	g.imports.Require(jsonAnnotationImport)
	if g.file != "" {
		g.imports.RequirePart(partFile(g.file))
	} else {
		logger().Debugf("%s: no file name, part directive skipped", c.Name)
	}

	if !c.HasAnnotation("JsonSerializable") {
		c.AddAnnotation("@JsonSerializable()")
	}

	if err := g.constructor(); err != nil {
		return err
	}

	var b block
	b.line(0, "factory ", c.Name, ".fromJson(Map<String, dynamic> json) =>")
	b.line(2, "_$", c.Name, "FromJson(json);")
	g.appendOrReplace("fromJson", b.String(), "factory "+c.Name+".fromJson(")

	g.appendOrReplace("toJson",
		"Map<String, dynamic> toJson() => _$"+c.Name+"ToJson(this);",
		"Map<String, dynamic> toJson()", "String toJson()")
	return nil
}
