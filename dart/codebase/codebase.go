package codebase

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/DanWlker/dart-json-serializable-helper/dart"
	"github.com/DanWlker/dart-json-serializable-helper/format"
	"github.com/DanWlker/dart-json-serializable-helper/generator"
	"github.com/DanWlker/dart-json-serializable-helper/project"
)

// Codebase holds the Dart files of a project together with the outcome of
// running the generator over them.
type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	opts    generator.Options
	files   map[string]*FileInfo
}

type FileInfo struct {
	Path    string
	Content []byte
	File    *dart.File
	Result  *generator.Result
	Err     error
}

// Action is a generation that can be applied to one class.
type Action struct {
	Title string
	Class string
	Part  generator.Part
	Edits []format.Edit
}

var partTitles = map[generator.Part]string{
	generator.PartAll:           "Generate data class",
	generator.PartConstructor:   "Generate constructor",
	generator.PartCopyWith:      "Generate copyWith",
	generator.PartSerialization: "Generate JSON serialization",
	generator.PartToString:      "Generate toString",
	generator.PartEquality:      "Generate equality",
	generator.PartEquatable:     "Use Equatable",

	generator.PartJsonSerializable: "Generate @JsonSerializable class template",
}

func New(rootDir string, opts generator.Options) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		opts:    opts,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

func (c *Codebase) Options() generator.Options {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts
}

// ScanAll loads every Dart source below the root directory.
func (c *Codebase) ScanAll() error {
	paths, err := project.DartFiles(c.rootDir)
	if err != nil {
		return err
	}
	var errs []error
	for _, path := range paths {
		if err := c.ScanFile(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	return c.UpdateFile(path, content)
}

func (c *Codebase) UpdateFile(path string, content []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.updateFileLocked(path, content)
}

func (c *Codebase) updateFileLocked(path string, content []byte) error {
	file := dart.Parse(string(content))
	result, err := generator.New(c.opts).GenerateFile(file)
	if err != nil {
		logger().Errorf("%s: %s", path, err)
	}

	c.files[path] = &FileInfo{
		Path:    path,
		Content: content,
		File:    file,
		Result:  result,
		Err:     err,
	}
	logger().Debugf("%s: %d classes", path, len(file.Classes))
	return err
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Paths returns the known files in lexical order.
func (c *Codebase) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	paths := make([]string, 0, len(c.files))
	for path := range c.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// WriteFile saves the generated text of path to disk and reloads it. It
// reports whether the file changed.
func (c *Codebase) WriteFile(path string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := c.files[path]
	if f == nil || f.Result == nil || !f.Result.Changed() {
		return false, nil
	}
	text, err := f.Result.Text()
	if err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	logger().Infof("%s: generated %d edits", path, len(f.Result.Edits))
	return true, c.updateFileLocked(path, []byte(text))
}

// Diagnostics returns the classes of path that cannot be generated.
func (c *Codebase) Diagnostics(path string) []generator.Diagnostic {
	f := c.GetFile(path)
	if f == nil || f.Result == nil {
		return nil
	}
	return f.Result.Diagnostics
}

// ActionsAt returns the actions offered when the cursor is on the given
// 1-based line. Only the declaration of a valid class offers actions, and
// only actions that would change the class are returned; an import block
// that merely needs sorting does not make an action worth offering.
func (c *Codebase) ActionsAt(path string, line int) ([]Action, error) {
	f := c.GetFile(path)
	if f == nil {
		return nil, nil
	}
	cls := f.File.ClassAt(line)
	if cls == nil || !cls.IsValid() {
		return nil, nil
	}
	opts := c.Options()

	parts := []generator.Part{generator.PartAll}
	if !cls.IsWidget() {
		parts = append(parts, generator.Parts...)
	}

	var actions []Action
	for _, part := range parts {
		o := opts
		o.Part = part
		if part == generator.PartEquatable {
			o.UseEquatable = true
		}
		// Each run mutates the parsed classes, so it gets a fresh parse.
		result, err := generator.New(o).ForFile(path).ForClass(cls.Name).Generate(string(f.Content))
		if err != nil {
			return nil, fmt.Errorf("actions for %s: %w", cls.Name, err)
		}
		if !changesClass(result.Edits) {
			continue
		}
		actions = append(actions, Action{
			Title: partTitles[part],
			Class: cls.Name,
			Part:  part,
			Edits: result.Edits,
		})
	}
	return actions, nil
}

func changesClass(edits []format.Edit) bool {
	for _, e := range edits {
		if e.Label != generator.ImportsLabel {
			return true
		}
	}
	return false
}
