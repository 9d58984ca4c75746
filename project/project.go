package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestName is the package manifest of a Dart project.
const ManifestName = "pubspec.yaml"

var ErrNoManifest = errors.New("no " + ManifestName + " found")

// Project represents a Dart or Flutter package rooted at a pubspec.yaml.
type Project struct {
	Name         string
	RootDir      string
	Manifest     string
	IsFlutter    bool
	Dependencies []string
}

type pubspec struct {
	Name         string         `yaml:"name"`
	Dependencies map[string]any `yaml:"dependencies"`
	Flutter      map[string]any `yaml:"flutter"`
}

// Load finds the project enclosing the current directory.
func Load() (*Project, error) {
	return Find(".")
}

// Find walks up from start until a directory containing pubspec.yaml is
// found. start may be a file.
func Find(start string) (*Project, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", start, err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		manifest := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(manifest); err == nil {
			return LoadFrom(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("find project from %s: %w", start, ErrNoManifest)
		}
		dir = parent
	}
}

// LoadFrom reads the pubspec.yaml in rootDir.
func LoadFrom(rootDir string) (*Project, error) {
	manifest := filepath.Join(rootDir, ManifestName)
	data, err := os.ReadFile(manifest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", rootDir, ErrNoManifest)
		}
		return nil, fmt.Errorf("read %s: %w", manifest, err)
	}

	var ps pubspec
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("parse %s: %w", manifest, err)
	}

	proj := &Project{
		Name:     ps.Name,
		RootDir:  rootDir,
		Manifest: manifest,
	}
	for dep := range ps.Dependencies {
		proj.Dependencies = append(proj.Dependencies, dep)
	}
	sort.Strings(proj.Dependencies)

	// A flutter section or a dependency on the flutter SDK marks a Flutter app.
	_, sdk := ps.Dependencies["flutter"]
	proj.IsFlutter = sdk || ps.Flutter != nil

	return proj, nil
}

// DependsOn reports whether the package lists name under dependencies.
func (p *Project) DependsOn(name string) bool {
	i := sort.SearchStrings(p.Dependencies, name)
	return i < len(p.Dependencies) && p.Dependencies[i] == name
}

var skipDirs = map[string]bool{
	".dart_tool": true,
	".git":       true,
	"build":      true,
}

// DartFiles returns all .dart files under dir, recursively, skipping tool
// output directories and generated *.g.dart / *.freezed.dart files.
func DartFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsDartSource(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan dart files in %s: %w", dir, err)
	}

	return files, nil
}

// IsDartSource reports whether path names a hand-written Dart file.
func IsDartSource(path string) bool {
	if !strings.HasSuffix(path, ".dart") {
		return false
	}
	return !strings.HasSuffix(path, ".g.dart") && !strings.HasSuffix(path, ".freezed.dart")
}
