// Package categorymap translates recommendation category codes into the
// labels shown on list cards.
package categorymap

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the root structure of the mapping file:
//
//	categories:
//	  AUTO: Viaggio in auto
//	  PAPPA: Pappa e allattamento
type File struct {
	Categories map[string]string `yaml:"categories"`
}

// Mapping resolves category codes case-insensitively. Codes without a label
// resolve to their upper-cased form.
type Mapping struct {
	labels map[string]string
}

// New builds a mapping from code to label.
func New(labels map[string]string) *Mapping {
	m := &Mapping{labels: make(map[string]string, len(labels))}
	for code, label := range labels {
		m.labels[strings.ToUpper(strings.TrimSpace(code))] = label
	}
	return m
}

// Load reads a mapping file from fsys.
func Load(fsys fs.FS, path string) (*Mapping, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var file File
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return New(file.Categories), nil
}

// LoadFile reads a mapping file from disk. An empty path yields an empty mapping.
func LoadFile(path string) (*Mapping, error) {
	if path == "" {
		return New(nil), nil
	}
	return Load(os.DirFS("."), strings.TrimPrefix(path, "./"))
}

func (m *Mapping) Resolve(code string) string {
	code = strings.ToUpper(code)
	if label, ok := m.labels[code]; ok {
		return label
	}
	return code
}
