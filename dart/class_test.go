package dart

import (
	"errors"
	"strings"
	"testing"
)

func TestClassType(t *testing.T) {
	tests := []struct {
		generics string
		want     string
	}{
		{"", "Pair"},
		{"<A, B>", "Pair<A, B>"},
		{"<A extends Comparable<A>, B>", "Pair<A, B>"},
		{"<T extends Object?>", "Pair<T>"},
	}

	for _, tt := range tests {
		c := &Class{Name: "Pair", Generics: tt.generics}
		if got := c.Type(); got != tt.want {
			t.Errorf("Type() with generics %q = %q, want %q", tt.generics, got, tt.want)
		}
	}
}

func TestClassDeclarationLine(t *testing.T) {
	c := &Class{
		Name:       "Box",
		Generics:   "<T extends num>",
		Abstract:   true,
		Superclass: "Base",
		Mixins:     []string{"A"},
		Interfaces: []string{"I", "J"},
	}
	c.AddMixin("EquatableMixin")
	c.AddMixin("A")

	want := "abstract class Box<T extends num> extends Base with A, EquatableMixin implements I, J {"
	if got := c.DeclarationLine(); got != want {
		t.Errorf("DeclarationLine() = %q, want %q", got, want)
	}
	if !c.Changed() {
		t.Error("Changed() = false after adding a mixin")
	}
}

func TestClassValidate(t *testing.T) {
	tests := []struct {
		name   string
		class  *Class
		target error
	}{
		{
			name:   "no fields",
			class:  &Class{Name: "Empty", StartLine: 1, EndLine: 2},
			target: ErrNoFields,
		},
		{
			name: "no ending",
			class: &Class{Name: "Open", StartLine: 1, Fields: []*Field{
				NewField("int", "a", 2, true, false),
			}},
			target: ErrNoEnding,
		},
		{
			name: "distinct sanitized names",
			class: &Class{Name: "Ok", StartLine: 1, EndLine: 4, Fields: []*Field{
				NewField("int", "total", 2, true, false),
				NewField("int", "to-tal", 3, true, false),
			}},
			target: nil,
		},
		{
			name: "same sanitized name",
			class: &Class{Name: "Dup", StartLine: 1, EndLine: 4, Fields: []*Field{
				NewField("int", "total", 2, true, false),
				NewField("int", "total$", 3, true, false),
			}},
			target: ErrDuplicateFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.class.Validate()
			if tt.target == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.target) {
				t.Fatalf("Validate() = %v, want %v", err, tt.target)
			}
			prefix := tt.class.Name + " couldn't be converted to a data class: "
			if !strings.HasPrefix(tt.class.Issue(), prefix) {
				t.Errorf("Issue() = %q, want prefix %q", tt.class.Issue(), prefix)
			}
		})
	}
}

func TestClassConstructorParams(t *testing.T) {
	c := &Class{
		Name:             "Point",
		Constructor:      "  const Point({\n    super.key,\n    this.x = 5,\n    // keep\n    required this.y,\n  }) : assert(x > 0);",
		ConstructorStart: 3,
		ConstructorEnd:   8,
	}

	params, err := c.ConstructorParams()
	if err != nil {
		t.Fatalf("ConstructorParams() error: %v", err)
	}
	want := []string{"super.key", "this.x = 5", "// keep\n    required this.y"}
	if len(params) != len(want) {
		t.Fatalf("ConstructorParams() = %q, want %q", params, want)
	}
	for i := range want {
		if params[i] != want[i] {
			t.Errorf("params[%d] = %q, want %q", i, params[i], want[i])
		}
	}

	if got := c.ConstructorTail(); got != ": assert(x > 0);" {
		t.Errorf("ConstructorTail() = %q", got)
	}
	open, end := c.ConstructorBrackets()
	if open != "{" || end != "}" {
		t.Errorf("ConstructorBrackets() = %q %q, want { }", open, end)
	}
	if !c.HasNamedConstructor() {
		t.Error("HasNamedConstructor() = false, want true")
	}
	if !c.HasConstConstructor() {
		t.Error("HasConstConstructor() = false, want true")
	}
}

func TestClassConstructorParamsContract(t *testing.T) {
	c := &Class{Name: "Point"}
	if _, err := c.ConstructorParams(); !errors.Is(err, ErrContract) {
		t.Errorf("ConstructorParams() error = %v, want ErrContract", err)
	}
}
