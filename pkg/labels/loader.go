package labels

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const localesDir = "locales"

type documentFile struct {
	Locale string            `json:"locale" yaml:"locale"`
	Labels map[string]string `json:"labels" yaml:"labels"`
}

// LoadFS reads every locales/<locale>/categories.{json,yaml,yml} file from
// fsys and builds a catalog from them.
func LoadFS(fsys fs.FS, opts ...Option) (*Catalog, error) {
	if fsys == nil {
		return nil, ErrNoTables
	}

	var tables []*Table
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		localeFromPath, ok := localeFromPath(p)
		if !ok {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("labels: read %s: %w", p, err)
		}
		doc, err := parseDocument(data, p)
		if err != nil {
			return err
		}

		locale := strings.TrimSpace(doc.Locale)
		if locale == "" {
			return fmt.Errorf("labels: file %s does not declare a locale", p)
		}
		if locale != localeFromPath {
			return fmt.Errorf("labels: file %s declares locale %q but lives under %q", p, locale, localeFromPath)
		}
		if _, err := language.Parse(locale); err != nil {
			return fmt.Errorf("labels: file %s: parse locale %q: %w", p, locale, err)
		}
		if previous, exists := seen[locale]; exists {
			return fmt.Errorf("labels: duplicate locale %q (files %s and %s)", locale, previous, p)
		}
		seen[locale] = p

		normalised := make(map[string]string, len(doc.Labels))
		for key, label := range doc.Labels {
			trimmedKey := strings.TrimSpace(key)
			if trimmedKey == "" {
				return fmt.Errorf("labels: file %s defines a blank category key", p)
			}
			trimmedLabel := strings.TrimSpace(label)
			if trimmedLabel == "" {
				return fmt.Errorf("labels: file %s defines a blank label for %q", p, trimmedKey)
			}
			normalised[trimmedKey] = trimmedLabel
		}

		tables = append(tables, NewTable(locale, normalised))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return NewCatalog(tables, opts...)
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("labels: file %s is empty", source)
	}

	jsonErr := json.Unmarshal(data, &doc)
	if jsonErr == nil {
		return doc, nil
	}

	doc = documentFile{}
	yamlErr := yaml.Unmarshal(data, &doc)
	if yamlErr == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("labels: parse %s as JSON or YAML: %w", source, errors.Join(jsonErr, yamlErr))
}

// localeFromPath accepts locales/<locale>/categories.<ext> and returns the
// locale segment.
func localeFromPath(p string) (string, bool) {
	segments := strings.Split(p, "/")
	if len(segments) != 3 || segments[0] != localesDir {
		return "", false
	}
	base := segments[2]
	ext := strings.ToLower(path.Ext(base))
	switch ext {
	case ".json", ".yaml", ".yml":
	default:
		return "", false
	}
	if strings.TrimSuffix(base, path.Ext(base)) != "categories" {
		return "", false
	}
	return segments[1], true
}
