package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanWlker/dart-json-serializable-helper/dart"
)

const finderSource = `class Point {
  final int x;

  Map<String, dynamic> toMap() {
    return <String, dynamic>{
      'x': x,
    };
  }

  factory Point.fromJson(String source) =>
      Point.fromMap(json.decode(source) as Map<String, dynamic>);

  @override
  String toString() => 'Point(x: $x)';

  void helper() {
    final s = toString();
  }
}
`

func TestFindPart(t *testing.T) {
	c := dart.Parse(finderSource).Classes[0]

	tests := []struct {
		label  string
		finder string
		start  int
		end    int
	}{
		{"toMap", "Map<String, dynamic> toMap()", 4, 8},
		{"fromJson", "factory Point.fromJson(String source)", 10, 11},
		{"toString", "String toString()", 14, 14},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			part, ok := FindPart(c, tt.label, tt.finder)
			require.True(t, ok)
			assert.Equal(t, tt.label, part.Label)
			assert.Equal(t, tt.start, part.StartLine)
			assert.Equal(t, tt.end, part.EndLine)
		})
	}
}

func TestFindPartMissing(t *testing.T) {
	c := dart.Parse(finderSource).Classes[0]

	_, ok := FindPart(c, "copyWith", "Point copyWith(")
	assert.False(t, ok)
	_, ok = FindPart(c, "hashCode", "int get hashCode")
	assert.False(t, ok)
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n\n  b\n", indent("a\n\nb"))
}
