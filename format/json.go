package format

import (
	"encoding/json"
	"io"

	"github.com/DanWlker/dart-json-serializable-helper/dart"
)

type JSONEncoder struct {
	w     io.Writer
	class *dart.Class
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(class *dart.Class) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := e.buildClassData()
	return json.MarshalIndent(data, "", "  ")
}

type jsonClass struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Kind        string      `json:"kind"`
	Superclass  string      `json:"superclass,omitempty"`
	Mixins      []string    `json:"mixins,omitempty"`
	Interfaces  []string    `json:"interfaces,omitempty"`
	Lines       jsonRange   `json:"lines"`
	Constructor *jsonRange  `json:"constructor,omitempty"`
	Fields      []jsonField `json:"fields"`
	Issue       string      `json:"issue,omitempty"`
}

type jsonRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type jsonField struct {
	Name       string   `json:"name"`
	SourceName string   `json:"sourceName,omitempty"`
	Type       string   `json:"type"`
	Line       int      `json:"line"`
	Nullable   bool     `json:"nullable,omitempty"`
	Collection string   `json:"collection,omitempty"`
	Modifiers  []string `json:"modifiers,omitempty"`
}

func (e *JSONEncoder) buildClassData() jsonClass {
	c := e.class
	data := jsonClass{
		Name:       c.Name,
		Type:       c.Type(),
		Kind:       classKind(c),
		Superclass: c.Superclass,
		Mixins:     c.Mixins,
		Interfaces: c.Interfaces,
		Lines:      jsonRange{Start: c.StartLine, End: c.EndLine},
		Fields:     e.buildFields(),
	}
	if c.HasConstructor() {
		data.Constructor = &jsonRange{Start: c.ConstructorStart, End: c.ConstructorEnd}
	}
	if err := c.Validate(); err != nil {
		data.Issue = err.Error()
	}
	return data
}

func (e *JSONEncoder) buildFields() []jsonField {
	result := make([]jsonField, len(e.class.Fields))
	for i, f := range e.class.Fields {
		result[i] = jsonField{
			Name:       f.Name,
			Type:       f.Type(),
			Line:       f.Line,
			Nullable:   f.IsNullable(),
			Collection: f.Collection().String(),
			Modifiers:  fieldModifiers(f),
		}
		if f.SourceName != f.Name {
			result[i].SourceName = f.SourceName
		}
	}
	return result
}

func classKind(c *dart.Class) string {
	switch {
	case c.IsWidget():
		return "widget"
	case c.Abstract:
		return "abstract"
	case c.UsesEquatable():
		return "equatable"
	default:
		return "class"
	}
}

func fieldModifiers(f *dart.Field) []string {
	var mods []string
	if f.IsLate {
		mods = append(mods, "late")
	}
	if f.IsFinal {
		mods = append(mods, "final")
	}
	if f.IsConst {
		mods = append(mods, "const")
	}
	if f.IsEnum {
		mods = append(mods, "enum")
	}
	return mods
}
