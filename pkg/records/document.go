package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document wraps a raw record payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("records: source is required")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, errors.New("records: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Record decodes the payload as a single record object. JSON is tried
// first; YAML is accepted for hand-written fixtures.
func (d Document) Record() (map[string]any, error) {
	var record map[string]any
	if err := decode(d.raw, &record); err != nil {
		return nil, fmt.Errorf("records: decode %s: %w", d.location(), err)
	}
	if record == nil {
		return nil, fmt.Errorf("records: decode %s: document is not an object", d.location())
	}
	return record, nil
}

// Reference is one entry of a category listing.
type Reference struct {
	Index string `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
	URL   string `json:"url" yaml:"url"`
}

type listing struct {
	Count   int         `json:"count" yaml:"count"`
	Results []Reference `json:"results" yaml:"results"`
}

// References decodes the payload as a category listing
// ({"count": n, "results": [{"index", "name", "url"}]}).
func (d Document) References() ([]Reference, error) {
	var list listing
	if err := decode(d.raw, &list); err != nil {
		return nil, fmt.Errorf("records: decode listing %s: %w", d.location(), err)
	}
	return list.Results, nil
}

func (d Document) location() string {
	if d.source == nil {
		return "document"
	}
	return d.source.Location()
}

func decode(raw []byte, out any) error {
	jsonErr := json.Unmarshal(raw, out)
	if jsonErr == nil {
		return nil
	}
	if yamlErr := yaml.Unmarshal(raw, out); yamlErr != nil {
		return fmt.Errorf("parse as JSON (%v) or YAML (%w)", jsonErr, yamlErr)
	}
	return nil
}
