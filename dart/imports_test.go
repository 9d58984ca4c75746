package dart

import (
	"strings"
	"testing"
)

func TestParseImportsRange(t *testing.T) {
	src := `// Copyright 2024
library models;

import 'package:flutter/material.dart';

import 'dart:convert';
part 'user.g.dart';

class User {}
`
	imp := ParseImports(strings.Split(src, "\n"))
	if imp.StartLine != 4 {
		t.Errorf("StartLine = %d, want 4", imp.StartLine)
	}
	if imp.EndLine != 7 {
		t.Errorf("EndLine = %d, want 7", imp.EndLine)
	}
	if len(imp.Values()) != 3 {
		t.Errorf("len(Values()) = %d, want 3", len(imp.Values()))
	}
}

func TestParseImportsInsertAfter(t *testing.T) {
	src := "// licence\nlibrary models;\n\nclass User {}\n"
	imp := ParseImports(strings.Split(src, "\n"))
	if imp.HasPrevious() {
		t.Fatal("HasPrevious() = true, want false")
	}
	if imp.InsertAfter != 2 {
		t.Errorf("InsertAfter = %d, want 2", imp.InsertAfter)
	}
}

func TestImportsFormat(t *testing.T) {
	src := `import 'src/b.dart';
import 'package:app/models/user.dart';
part 'x.g.dart';
export 'src/a.dart';
import 'package:equatable/equatable.dart';
import 'dart:convert';
import 'dart:async';
import 'package:app/app.dart';
`
	imp := ParseImports(strings.Split(src, "\n"))
	imp.ProjectName = "app"

	want := `import 'dart:async';
import 'dart:convert';

import 'package:equatable/equatable.dart';

import 'package:app/app.dart';
import 'package:app/models/user.dart';

import 'src/b.dart';

export 'src/a.dart';

part 'x.g.dart';`
	if got := imp.Format(); got != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}
	if !imp.Changed() {
		t.Error("Changed() = false, want true")
	}
}

func TestImportsUnchanged(t *testing.T) {
	src := "import 'dart:convert';\n\nimport 'package:collection/collection.dart';\n"
	imp := ParseImports(strings.Split(src, "\n"))
	if imp.Changed() {
		t.Errorf("Changed() = true for already sorted imports:\n%s", imp.Format())
	}
}

func TestImportsRequire(t *testing.T) {
	imp := ParseImports([]string{`import "package:flutter/material.dart";`})

	imp.Require("package:flutter/foundation.dart",
		"package:flutter/material.dart",
		"package:flutter/cupertino.dart",
		"package:flutter/widgets.dart")
	if imp.Includes("package:flutter/foundation.dart") {
		t.Error("foundation.dart added although material.dart provides it")
	}

	imp.Require("dart:convert")
	imp.Require("dart:convert")
	count := 0
	for _, v := range imp.Values() {
		if v == "import 'dart:convert';" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("dart:convert imported %d times, want 1", count)
	}
	if !imp.Changed() {
		t.Error("Changed() = false after adding an import")
	}
}

func TestImportsRequirePart(t *testing.T) {
	imp := ParseImports([]string{`import 'package:meta/meta.dart';`, `part "user.g.dart";`})

	imp.RequirePart("user.g.dart")
	if imp.Changed() {
		t.Errorf("Changed() = true for an existing part directive:\n%s", imp.Format())
	}

	imp.RequirePart("user.freezed.dart")
	want := "import 'package:meta/meta.dart';\n\npart \"user.g.dart\";\npart 'user.freezed.dart';"
	if got := imp.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
