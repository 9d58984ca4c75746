package codebase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/DanWlker/dart-json-serializable-helper/dart"
	"github.com/DanWlker/dart-json-serializable-helper/format"
	"github.com/DanWlker/dart-json-serializable-helper/generator"
)

const pointSource = `class Point {
  final int x;
  final int y;
}
`

const mixedSource = `import 'package:meta/meta.dart';

class Empty {
  void run() {}
}

class Point {
  final int x;
}
`

func TestUpdateFileDiagnostics(t *testing.T) {
	cb := New(t.TempDir(), generator.DefaultOptions())
	require.NoError(t, cb.UpdateFile("a.dart", []byte(mixedSource)))

	diags := cb.Diagnostics("a.dart")
	require.Len(t, diags, 1)
	assert.Equal(t, "Empty", diags[0].Class)
	assert.Equal(t, 3, diags[0].Line)
	assert.ErrorIs(t, diags[0].Err, dart.ErrNoFields)

	assert.Nil(t, cb.Diagnostics("missing.dart"))
	assert.Equal(t, []string{"a.dart"}, cb.Paths())

	cb.RemoveFile("a.dart")
	assert.Nil(t, cb.GetFile("a.dart"))
}

func TestActionsAt(t *testing.T) {
	cb := New(t.TempDir(), generator.DefaultOptions())
	require.NoError(t, cb.UpdateFile("p.dart", []byte(pointSource)))

	actions, err := cb.ActionsAt("p.dart", 1)
	require.NoError(t, err)
	require.Len(t, actions, 1+len(generator.Parts))

	var titles []string
	for _, a := range actions {
		titles = append(titles, a.Title)
		assert.Equal(t, "Point", a.Class)
	}
	assert.Equal(t, "Generate data class", titles[0])
	assert.Contains(t, titles, "Generate copyWith")
	assert.Contains(t, titles, "Use Equatable")

	text, err := format.Apply(pointSource, actions[0].Edits)
	require.NoError(t, err)
	assert.Contains(t, text, "  Point copyWith({")
	assert.Contains(t, text, "  bool operator ==(covariant Point other) {")

	none, err := cb.ActionsAt("p.dart", 2)
	require.NoError(t, err)
	assert.Empty(t, none, "only the declaration line offers actions")
}

func TestActionsAtInvalidClass(t *testing.T) {
	cb := New(t.TempDir(), generator.DefaultOptions())
	require.NoError(t, cb.UpdateFile("a.dart", []byte(mixedSource)))

	actions, err := cb.ActionsAt("a.dart", 3)
	require.NoError(t, err)
	assert.Empty(t, actions)

	actions, err = cb.ActionsAt("a.dart", 7)
	require.NoError(t, err)
	require.NotEmpty(t, actions)
	for _, a := range actions {
		for _, e := range a.Edits {
			assert.NotEqual(t, "Empty", e.Label)
		}
	}
}

func TestActionsAtWidget(t *testing.T) {
	src := `class Title extends StatelessWidget {
  final String text;
}
`
	cb := New(t.TempDir(), generator.DefaultOptions())
	require.NoError(t, cb.UpdateFile("w.dart", []byte(src)))

	actions, err := cb.ActionsAt("w.dart", 1)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "Generate data class", actions[0].Title)
}

func TestActionsAtIgnoresImportSorting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "point.dart")
	require.NoError(t, os.WriteFile(path, []byte(pointSource), 0o644))

	cb := New(dir, generator.DefaultOptions())
	require.NoError(t, cb.ScanAll())
	_, err := cb.WriteFile(path)
	require.NoError(t, err)

	// Prepend unsorted imports so that only the directive block is out of order.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := "import 'package:meta/meta.dart';\nimport 'dart:async';\n" + string(data)
	require.NoError(t, cb.UpdateFile(path, []byte(text)))
	require.True(t, cb.GetFile(path).File.Imports.Changed())

	line := cb.GetFile(path).File.Classes[0].StartLine
	actions, err := cb.ActionsAt(path, line)
	require.NoError(t, err)

	var titles []string
	for _, a := range actions {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{"Use Equatable", "Generate @JsonSerializable class template"}, titles,
		"an up to date class only offers the alternative generations")
}

func TestActionsAtJsonSerializable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "point.dart")
	require.NoError(t, os.WriteFile(path, []byte(pointSource), 0o644))

	cb := New(dir, generator.DefaultOptions())
	require.NoError(t, cb.ScanFile(path))

	actions, err := cb.ActionsAt(path, 1)
	require.NoError(t, err)
	var action *Action
	for i := range actions {
		if actions[i].Part == generator.PartJsonSerializable {
			action = &actions[i]
		}
	}
	require.NotNil(t, action)
	assert.Equal(t, "Generate @JsonSerializable class template", action.Title)

	text, err := format.Apply(pointSource, action.Edits)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "import 'package:json_annotation/json_annotation.dart';\n\npart 'point.g.dart';\n\n@JsonSerializable()\nclass Point {\n"), text)
	assert.Contains(t, text, "  factory Point.fromJson(Map<String, dynamic> json) =>\n      _$PointFromJson(json);\n")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "point.dart")
	require.NoError(t, os.WriteFile(path, []byte(pointSource), 0o644))

	cb := New(dir, generator.DefaultOptions())
	require.NoError(t, cb.ScanAll())

	written, err := cb.WriteFile(path)
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "factory Point.fromJson(String source) =>")

	written, err = cb.WriteFile(path)
	require.NoError(t, err)
	assert.False(t, written, "generated file is a fixed point")
}

func TestTextEdits(t *testing.T) {
	lines := []string{"import 'a.dart';", "", "class Ä {", "}"}
	edits := textEdits(lines, []format.Edit{
		{Label: "imports", StartLine: 1, EndLine: 0, NewText: "import 'b.dart';"},
		{Label: "Ä", StartLine: 3, EndLine: 4, NewText: "class Ä {\n  final int a;\n}"},
	})

	require.Len(t, edits, 2)
	assert.Equal(t, protocol.Range{}, edits[0].Range)
	assert.Equal(t, "import 'b.dart';\n", edits[0].NewText)
	assert.Equal(t, protocol.Position{Line: 2}, edits[1].Range.Start)
	assert.Equal(t, protocol.Position{Line: 3, Character: 1}, edits[1].Range.End)
	assert.Equal(t, "class Ä {\n  final int a;\n}", edits[1].NewText)
}

func TestDiagnosticsRange(t *testing.T) {
	lines := strings.Split(mixedSource, "\n")
	cb := New(t.TempDir(), generator.DefaultOptions())
	require.NoError(t, cb.UpdateFile("a.dart", []byte(mixedSource)))

	diags := diagnostics(lines, cb.Diagnostics("a.dart"))
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.UInteger(2), diags[0].Range.Start.Line)
	assert.Equal(t, protocol.UInteger(len("class Empty {")), diags[0].Range.End.Character)
	assert.Contains(t, diags[0].Message, "Class must have at least one property!")
	assert.Equal(t, []protocol.Diagnostic{}, diagnostics(lines, nil))
}

func TestURIToPath(t *testing.T) {
	path, err := uriToPath("file:///home/me/app/lib/my%20model.dart")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/home/me/app/lib/my model.dart"), path)

	path, err = uriToPath("lib/model.dart")
	require.NoError(t, err)
	assert.Equal(t, "lib/model.dart", path)
}
