package dart

import "testing"

func TestFieldDerivedProperties(t *testing.T) {
	tests := []struct {
		rawType    string
		typ        string
		nullable   bool
		collection CollectionKind
		primitive  bool
		defValue   string
	}{
		{"int", "int", false, CollectionNone, true, "0"},
		{"int?", "int", true, CollectionNone, true, "0"},
		{"double", "double", false, CollectionNone, true, "0.0"},
		{"num", "num", false, CollectionNone, true, "0"},
		{"String", "String", false, CollectionNone, true, "''"},
		{"bool", "bool", false, CollectionNone, true, "false"},
		{"dynamic", "dynamic", false, CollectionNone, true, "null"},
		{"List<int>", "List<int>", false, CollectionList, true, "const []"},
		{"List<Item>?", "List<Item>", true, CollectionList, false, "const []"},
		{"List", "List", false, CollectionList, true, "const []"},
		{"Set<String>", "Set<String>", false, CollectionSet, true, "const {}"},
		{"Map<String, Item>", "Map<String, Item>", false, CollectionMap, true, "const {}"},
		{"Listing", "Listing", false, CollectionNone, false, "Listing()"},
		{"Address", "Address", false, CollectionNone, false, "Address()"},
	}

	for _, tt := range tests {
		t.Run(tt.rawType, func(t *testing.T) {
			f := NewField(tt.rawType, "value", 1, true, false)
			if got := f.Type(); got != tt.typ {
				t.Errorf("Type() = %q, want %q", got, tt.typ)
			}
			if got := f.IsNullable(); got != tt.nullable {
				t.Errorf("IsNullable() = %v, want %v", got, tt.nullable)
			}
			if got := f.Collection(); got != tt.collection {
				t.Errorf("Collection() = %v, want %v", got, tt.collection)
			}
			if got := f.IsPrimitive(); got != tt.primitive {
				t.Errorf("IsPrimitive() = %v, want %v", got, tt.primitive)
			}
			if got := f.DefaultValue(); got != tt.defValue {
				t.Errorf("DefaultValue() = %q, want %q", got, tt.defValue)
			}
		})
	}
}

func TestFieldElement(t *testing.T) {
	tests := []struct {
		rawType string
		want    string
	}{
		{"List<Item>", "Item"},
		{"Set<int>", "int"},
		{"List<Item>?", "Item"},
		{"List", "dynamic"},
		{"Item", "Item"},
		{"Map<String, int>", "Map<String, int>"},
	}

	for _, tt := range tests {
		f := NewField(tt.rawType, "items", 1, true, false)
		if got := f.Element().Type(); got != tt.want {
			t.Errorf("Element(%q).Type() = %q, want %q", tt.rawType, got, tt.want)
		}
	}
}

func TestFieldSanitizesName(t *testing.T) {
	f := NewField("String", "first-name", 3, true, false)
	if f.SourceName != "first-name" {
		t.Errorf("SourceName = %q, want %q", f.SourceName, "first-name")
	}
	if f.Name != "firstName" {
		t.Errorf("Name = %q, want %q", f.Name, "firstName")
	}
}
