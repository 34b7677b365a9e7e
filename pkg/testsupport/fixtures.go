// Package testsupport holds fixture helpers shared by the package tests.
package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/goliatone/go-srdview/pkg/records"
)

// LoadDocument reads a fixture into a records.Document backed by a file
// source. Failures stop the test.
func LoadDocument(t *testing.T, path string) records.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath is LoadDocument for callers without a *testing.T.
func LoadDocumentFromPath(path string) (records.Document, error) {
	if path == "" {
		return records.Document{}, errors.New("testsupport: document path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return records.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := records.NewDocument(records.SourceFromFile(path), data)
	if err != nil {
		return records.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// LoadRecord decodes a fixture file into a record map.
func LoadRecord(t *testing.T, path string) map[string]any {
	t.Helper()

	record, err := LoadDocument(t, path).Record()
	if err != nil {
		t.Fatalf("decode record %s: %v", path, err)
	}
	return record
}

// DecodeRecord decodes an inline JSON payload into a record map.
func DecodeRecord(t *testing.T, payload string) map[string]any {
	t.Helper()

	var record map[string]any
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	return record
}

// Context returns a context cancelled when the test ends.
func Context(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
