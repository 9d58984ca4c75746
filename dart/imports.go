package dart

import (
	"sort"
	"strings"
)

type importBucket int

const (
	bucketPlatform importBucket = iota
	bucketPackage
	bucketLocal
	bucketRelative
	bucketExport
	bucketPart
	numBuckets
)

// Imports is the import/export/part directive block at the top of a file.
type Imports struct {
	values []string
	raw    []string

	// StartLine and EndLine delimit the directive block, 1-based and
	// inclusive. Both are 0 when the file has no directives; InsertAfter is
	// then the last leading library or licence comment line, or 0.
	StartLine   int
	EndLine     int
	InsertAfter int

	// ProjectName is the package name of the enclosing project; imports of
	// package:<ProjectName>/ are grouped as local imports.
	ProjectName string
}

func isDirective(line string) bool {
	return strings.HasPrefix(line, "import") ||
		strings.HasPrefix(line, "export") ||
		strings.HasPrefix(line, "part")
}

// ParseImports reads the leading directive block of a file. Blank lines,
// library statements and licence comments may precede or separate the
// directives; any other line ends the block.
func ParseImports(lines []string) *Imports {
	imp := &Imports{}
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if isDirective(line) {
			imp.values = append(imp.values, line)
			imp.raw = append(imp.raw, line)
			if imp.StartLine == 0 {
				imp.StartLine = i + 1
			}
			imp.EndLine = i + 1
			continue
		}
		licence := strings.HasPrefix(line, "//") && len(imp.values) == 0
		if line == "" || licence || strings.HasPrefix(line, "library") {
			if len(imp.values) == 0 && line != "" {
				imp.InsertAfter = i + 1
			}
			continue
		}
		break
	}
	return imp
}

func (imp *Imports) HasImports() bool { return len(imp.values) > 0 }

// HasPrevious reports whether the file had a directive block.
func (imp *Imports) HasPrevious() bool { return imp.StartLine > 0 }

func (imp *Imports) Values() []string { return append([]string(nil), imp.values...) }

func (imp *Imports) bucket(directive string) importBucket {
	switch {
	case strings.HasPrefix(directive, "export"):
		return bucketExport
	case strings.HasPrefix(directive, "part"):
		return bucketPart
	}
	uri := directiveURI(directive)
	switch {
	case strings.HasPrefix(uri, "dart:"):
		return bucketPlatform
	case imp.ProjectName != "" && strings.HasPrefix(uri, "package:"+imp.ProjectName+"/"):
		return bucketLocal
	case strings.HasPrefix(uri, "package:"):
		return bucketPackage
	}
	return bucketRelative
}

// Format renders the directives grouped into platform, package, local,
// relative, export and part buckets. Each bucket is sorted and buckets are
// separated by a blank line.
func (imp *Imports) Format() string {
	var buckets [numBuckets][]string
	for _, v := range imp.values {
		b := imp.bucket(v)
		buckets[b] = append(buckets[b], v)
	}

	var groups []string
	for _, b := range buckets {
		if len(b) == 0 {
			continue
		}
		sort.Strings(b)
		groups = append(groups, strings.Join(b, "\n"))
	}
	return strings.Join(groups, "\n\n")
}

// Changed reports whether Format differs from the directives as written,
// ignoring whitespace.
func (imp *Imports) Changed() bool {
	return stripSpace(strings.Join(imp.raw, "")) != stripSpace(imp.Format())
}

// Includes reports whether a directive with the given URI is present, in
// either quote style.
func (imp *Imports) Includes(uri string) bool {
	for _, v := range imp.values {
		if strings.HasPrefix(v, "import") && directiveURI(v) == uri {
			return true
		}
	}
	return false
}

// Require adds an import of uri unless it, or one of the alternatives that
// provide the same names, is already imported.
func (imp *Imports) Require(uri string, alternatives ...string) {
	if imp.Includes(uri) {
		return
	}
	for _, alt := range alternatives {
		if imp.Includes(alt) {
			return
		}
	}
	imp.values = append(imp.values, "import '"+uri+"';")
}

// RequirePart adds a part directive for uri unless the file already has one.
func (imp *Imports) RequirePart(uri string) {
	for _, v := range imp.values {
		if strings.HasPrefix(v, "part ") && directiveURI(v) == uri {
			return
		}
	}
	imp.values = append(imp.values, "part '"+uri+"';")
}

func directiveURI(directive string) string {
	start := strings.IndexAny(directive, `'"`)
	if start < 0 {
		return ""
	}
	quote := directive[start]
	end := strings.IndexByte(directive[start+1:], quote)
	if end < 0 {
		return directive[start+1:]
	}
	return directive[start+1 : start+1+end]
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
