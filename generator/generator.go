package generator

import (
	"fmt"
	"strings"

	"github.com/DanWlker/dart-json-serializable-helper/dart"
	"github.com/DanWlker/dart-json-serializable-helper/format"
)

// Diagnostic explains why a class was left untouched.
type Diagnostic struct {
	Class string
	// Line is the declaration line of the class.
	Line int
	Err  error
}

func (d Diagnostic) Error() string { return d.Err.Error() }

// Result is the outcome of one generation run over a file.
type Result struct {
	File        *dart.File
	Edits       []format.Edit
	Diagnostics []Diagnostic
}

// ImportsLabel labels the edit of the directive block.
const ImportsLabel = "imports"

func (r *Result) Changed() bool { return len(r.Edits) > 0 }

// EditFor returns the edit of the named class.
func (r *Result) EditFor(class string) (format.Edit, bool) {
	for _, e := range r.Edits {
		if e.Label == class {
			return e, true
		}
	}
	return format.Edit{}, false
}

// Text applies every edit to the source lines.
func (r *Result) Text() (string, error) {
	lines, err := format.ApplyLines(r.File.Lines, r.Edits)
	if err != nil {
		return "", err
	}
	newline := r.File.Newline
	if newline == "" {
		newline = "\n"
	}
	return strings.Join(lines, newline), nil
}

type Generator struct {
	opts  Options
	class string
	file  string
}

func New(opts Options) *Generator {
	return &Generator{opts: opts}
}

func (g *Generator) Options() Options { return g.opts }

// ForClass returns a generator that only touches the named class.
func (g *Generator) ForClass(name string) *Generator {
	return &Generator{opts: g.opts, class: name, file: g.file}
}

// ForFile returns a generator for the source file at path. The file name
// names the part file of json_serializable output.
func (g *Generator) ForFile(path string) *Generator {
	return &Generator{opts: g.opts, class: g.class, file: path}
}

// Generate parses text and synthesizes the enabled members of every valid
// class. Invalid classes are reported as diagnostics and left untouched.
func (g *Generator) Generate(text string) (*Result, error) {
	return g.GenerateFile(dart.Parse(text))
}

func (g *Generator) GenerateFile(file *dart.File) (*Result, error) {
	file.Imports.ProjectName = g.opts.Project.Name
	result := &Result{File: file}

	for _, c := range file.Classes {
		if g.class != "" && c.Name != g.class {
			continue
		}
		if err := c.Validate(); err != nil {
			logger().Warningf("%s", err)
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Class: c.Name,
				Line:  c.StartLine,
				Err:   err,
			})
			continue
		}

		cg := &classGen{opts: &g.opts, class: c, imports: file.Imports, file: g.file}
		if err := cg.generate(); err != nil {
			return nil, fmt.Errorf("generate %s: %w", c.Name, err)
		}
		if !c.Changed() {
			logger().Debugf("%s: up to date", c.Name)
			continue
		}

		text, err := format.Assemble(c)
		if err != nil {
			return nil, err
		}
		result.Edits = append(result.Edits, format.Edit{
			Label:     c.Name,
			StartLine: c.StartLine,
			EndLine:   c.EndLine,
			NewText:   text,
		})
	}

	if edit, ok := importsEdit(file.Imports); ok {
		result.Edits = append(result.Edits, edit)
	}
	return result, nil
}

func importsEdit(imp *dart.Imports) (format.Edit, bool) {
	if !imp.HasImports() || !imp.Changed() {
		return format.Edit{}, false
	}
	block := imp.Format()
	if imp.HasPrevious() {
		return format.Edit{
			Label:     ImportsLabel,
			StartLine: imp.StartLine,
			EndLine:   imp.EndLine,
			NewText:   block,
		}, true
	}
	text := block + "\n"
	if imp.InsertAfter > 0 {
		text = "\n" + block
	}
	return format.Edit{
		Label:     ImportsLabel,
		StartLine: imp.InsertAfter + 1,
		EndLine:   imp.InsertAfter,
		NewText:   text,
	}, true
}

// classGen carries the class being generated through the member builders.
type classGen struct {
	opts    *Options
	class   *dart.Class
	imports *dart.Imports
	file    string
}

func (g *classGen) equatable() bool {
	return (g.class.UsesEquatable() || g.opts.UseEquatable) && g.opts.selected(PartEquatable)
}

func (g *classGen) generate() error {
	c := g.class
	o := g.opts

	if o.Part == PartJsonSerializable {
		return g.jsonSerializable()
	}

	if o.Constructor.Enabled && o.selected(PartConstructor) {
		if err := g.constructor(); err != nil {
			return err
		}
	}
	if c.IsWidget() {
		return nil
	}

	if !c.Abstract {
		if o.CopyWith.Enabled && o.selected(PartCopyWith) {
			g.copyWith()
		}
		if o.selected(PartSerialization) {
			if o.ToMap.Enabled {
				g.toMap()
			}
			if o.FromMap.Enabled {
				g.fromMap()
			}
			if o.ToJson.Enabled {
				g.toJson()
			}
			if o.FromJson.Enabled {
				g.fromJson()
			}
		}
	}

	if o.ToString.Enabled && o.selected(PartToString) {
		g.toString()
	}

	if g.equatable() {
		g.props()
		return nil
	}
	if o.selected(PartEquality) {
		if o.Equality.Enabled {
			g.equality()
		}
		if o.HashCode.Enabled {
			g.hashCode()
		}
	}
	return nil
}

// appendOrReplace records text as a replacement of the member found by the
// first matching finder, or as an insertion when the class has no such member
// yet. An existing member that only differs in whitespace is left alone.
func (g *classGen) appendOrReplace(label, text string, finders ...string) {
	c := g.class
	var part dart.Part
	ok := false
	for _, finder := range finders {
		if part, ok = FindPart(c, label, finder); ok {
			break
		}
	}
	if !ok {
		c.AddInsertion("\n" + indent(text))
		logger().Debugf("%s: insert %s", c.Name, label)
		return
	}

	replacement := strings.TrimSuffix(indent(strings.Replace(text, "@override\n", "", 1)), "\n")
	if stripSpace(part.Current) == stripSpace(replacement) {
		return
	}
	part.Replacement = replacement
	c.AddReplacement(part)
	logger().Debugf("%s: replace %s at lines %d-%d", c.Name, label, part.StartLine, part.EndLine)
}
