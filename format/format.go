package format

import (
	"encoding"

	"github.com/DanWlker/dart-json-serializable-helper/dart"
)

// Encoder writes the outline of a parsed class.
type Encoder interface {
	encoding.TextMarshaler
	Encode(class *dart.Class) error
}
