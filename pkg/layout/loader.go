package layout

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	// Categories stays a raw node so the declaration order survives decoding.
	Categories yaml.Node `yaml:"categories"`
}

// LoadFS walks fsys in lexical path order and loads every JSON/YAML layout
// file. Categories keep their order inside a file, and files contribute in
// path order, which together define the declaration order of the store.
func LoadFS(fsys fs.FS, opts ...Option) (*Store, error) {
	store, err := New(nil, opts...)
	if err != nil {
		return nil, err
	}
	if fsys == nil {
		return store, nil
	}

	err = fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isLayoutFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("layout: read %s: %w", path, err)
		}
		categories, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		for _, category := range categories {
			if err := store.add(category.Name, category.Policy, path); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// parseDocument decodes one layout file. JSON documents are valid YAML, so a
// single decoder covers both and keeps object key order.
func parseDocument(data []byte, source string) ([]Category, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("layout: file %s is empty", source)
	}

	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("layout: parse %s: %w", source, err)
	}

	node := &doc.Categories
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("layout: file %s: categories must be a mapping (line %d)", source, node.Line)
	}

	categories := make([]Category, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var policy Policy
		if err := valueNode.Decode(&policy); err != nil {
			return nil, fmt.Errorf("layout: file %s: category %q: %w", source, keyNode.Value, err)
		}
		categories = append(categories, Category{Name: keyNode.Value, Policy: policy})
	}
	return categories, nil
}

func isLayoutFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
