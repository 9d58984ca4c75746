package dart

import "strings"

type CollectionKind int

const (
	CollectionNone CollectionKind = iota
	CollectionList
	CollectionSet
	CollectionMap
)

func (k CollectionKind) String() string {
	switch k {
	case CollectionList:
		return "List"
	case CollectionSet:
		return "Set"
	case CollectionMap:
		return "Map"
	}
	return ""
}

// Field is a class-level data member inferred from a declaration line.
type Field struct {
	// RawType is the declared type as written, including a trailing '?'.
	RawType string
	// SourceName is the name as written; it is used as the map key.
	SourceName string
	// Name is SourceName sanitised into a usable identifier.
	Name    string
	Line    int
	IsFinal bool
	IsConst bool
	IsLate  bool
	// IsEnum marks a field backed by an enum index, flagged by a preceding
	// "// enum" comment.
	IsEnum bool
}

func NewField(rawType, sourceName string, line int, isFinal, isConst bool) *Field {
	return &Field{
		RawType:    rawType,
		SourceName: sourceName,
		Name:       VarName(sourceName),
		Line:       line,
		IsFinal:    isFinal,
		IsConst:    isConst,
	}
}

// Type is the declared type without the nullability marker.
func (f *Field) Type() string {
	return strings.TrimSuffix(f.RawType, "?")
}

func (f *Field) IsNullable() bool {
	return strings.HasSuffix(f.RawType, "?")
}

func (f *Field) isCollectionType(name string) bool {
	return f.RawType == name || strings.HasPrefix(f.RawType, name+"<")
}

func (f *Field) Collection() CollectionKind {
	switch {
	case f.isCollectionType("List"):
		return CollectionList
	case f.isCollectionType("Set"):
		return CollectionSet
	case f.isCollectionType("Map"):
		return CollectionMap
	}
	return CollectionNone
}

func (f *Field) IsList() bool       { return f.Collection() == CollectionList }
func (f *Field) IsSet() bool        { return f.Collection() == CollectionSet }
func (f *Field) IsMap() bool        { return f.Collection() == CollectionMap }
func (f *Field) IsCollection() bool { return f.Collection() != CollectionNone }
func (f *Field) IsPrivate() bool    { return strings.HasPrefix(f.Name, "_") }

// Element returns a field describing the element type of a list or set.
// Other fields, maps included, return themselves.
func (f *Field) Element() *Field {
	kind := f.Collection()
	if kind != CollectionList && kind != CollectionSet {
		return f
	}
	collection := kind.String()
	elem := "dynamic"
	if f.RawType != collection {
		elem = strings.Replace(f.RawType, collection+"<", "", 1)
		elem = strings.Replace(elem, ">", "", 1)
	}
	return &Field{
		RawType:    elem,
		SourceName: f.SourceName,
		Name:       f.Name,
		Line:       f.Line,
		IsFinal:    f.IsFinal,
	}
}

// IsPrimitive reports whether values of the field (the elements, for lists
// and sets) pass through map serialization unchanged.
func (f *Field) IsPrimitive() bool {
	switch f.Element().Type() {
	case "String", "num", "dynamic", "bool", "int", "double":
		return true
	}
	return f.IsMap()
}

func (f *Field) IsInt() bool    { return f.Element().Type() == "int" }
func (f *Field) IsDouble() bool { return f.Element().Type() == "double" }

// DefaultValue is the literal used when a default must be synthesized.
func (f *Field) DefaultValue() string {
	switch f.Collection() {
	case CollectionList:
		return "const []"
	case CollectionSet, CollectionMap:
		return "const {}"
	}
	switch f.Type() {
	case "String":
		return "''"
	case "num", "int":
		return "0"
	case "double":
		return "0.0"
	case "bool":
		return "false"
	case "dynamic":
		return "null"
	}
	return f.Type() + "()"
}
