package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/DanWlker/dart-json-serializable-helper/dart"
)

type LineEncoder struct {
	w     io.Writer
	class *dart.Class
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(class *dart.Class) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	c := e.class

	fmt.Fprintf(&sb, "%s\t%s\t%d-%d\t%s\n", classKind(c), c.Type(), c.StartLine, c.EndLine, e.supertypesStr())

	if c.HasConstructor() {
		fmt.Fprintf(&sb, "constructor\t%d-%d\n", c.ConstructorStart, c.ConstructorEnd)
	}

	for _, f := range c.Fields {
		fmt.Fprintf(&sb, "field\t%s\t%s\t%d\t%s\n",
			f.Name,
			f.RawType,
			f.Line,
			strings.Join(fieldModifiers(f), " "),
		)
	}

	if err := c.Validate(); err != nil {
		fmt.Fprintf(&sb, "issue\t%s\n", err)
	}

	return []byte(sb.String()), nil
}

func (e *LineEncoder) supertypesStr() string {
	c := e.class
	var parts []string
	if c.Superclass != "" {
		parts = append(parts, "extends "+c.Superclass)
	}
	if len(c.Mixins) > 0 {
		parts = append(parts, "with "+strings.Join(c.Mixins, ", "))
	}
	if len(c.Interfaces) > 0 {
		parts = append(parts, "implements "+strings.Join(c.Interfaces, ", "))
	}
	return strings.Join(parts, " ")
}
