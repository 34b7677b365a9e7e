package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Transformer mutates a decoded record before it is arranged. Implementations
// can rename fields, inject values, or drop data the view should not show.
type Transformer interface {
	Transform(ctx context.Context, category string, record map[string]any) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, category string, record map[string]any) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, category string, record map[string]any) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, category, record)
}

// JSONPresetTransformer applies declarative patches loaded from a JSON file.
// Patches under "*" apply to every category and run before the
// category-specific ones:
//
//	{
//	  "*":      {"drop": ["_id"]},
//	  "spells": {"rename": {"higher_level": "at_higher_levels"}, "set": {"source": "SRD 5.1"}}
//	}
type JSONPresetTransformer struct {
	document map[string]recordPatch
}

type recordPatch struct {
	Drop   []string          `json:"drop"`
	Rename map[string]string `json:"rename"`
	Set    map[string]any    `json:"set"`
}

const anyCategory = "*"

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document map[string]recordPatch
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	for category, patch := range document {
		targets := make(map[string]string, len(patch.Rename))
		for from, to := range patch.Rename {
			if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
				return nil, fmt.Errorf("json preset transformer: %s: rename entries must be non-empty", category)
			}
			if other, dup := targets[to]; dup {
				return nil, fmt.Errorf("json preset transformer: %s: %q and %q both rename to %q", category, other, from, to)
			}
			targets[to] = from
		}
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a transformer document from fsys.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the wildcard patch and then the category patch.
func (t *JSONPresetTransformer) Transform(ctx context.Context, category string, record map[string]any) error {
	if record == nil {
		return errors.New("json preset transformer: record is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if t == nil {
		return nil
	}

	if patch, ok := t.document[anyCategory]; ok {
		if err := applyPatch(record, patch); err != nil {
			return fmt.Errorf("json preset transformer: %s: %w", anyCategory, err)
		}
	}
	if patch, ok := t.document[category]; ok && category != anyCategory {
		if err := applyPatch(record, patch); err != nil {
			return fmt.Errorf("json preset transformer: %s: %w", category, err)
		}
	}
	return nil
}

// Drop runs first, then rename, then set. Renames apply simultaneously, so
// {"a": "b", "b": "a"} swaps and {"a": "b", "b": "c"} moves both values.
func applyPatch(record map[string]any, patch recordPatch) error {
	for _, field := range patch.Drop {
		delete(record, field)
	}

	moved := make(map[string]any, len(patch.Rename))
	for from := range patch.Rename {
		if value, ok := record[from]; ok {
			moved[from] = value
		}
	}
	for from := range moved {
		to := patch.Rename[from]
		if _, taken := record[to]; !taken {
			continue
		}
		if _, leaving := moved[to]; !leaving {
			return fmt.Errorf("rename %q would overwrite field %q", from, to)
		}
	}
	for from := range moved {
		delete(record, from)
	}
	for from, value := range moved {
		record[patch.Rename[from]] = value
	}

	for field, value := range patch.Set {
		record[field] = value
	}
	return nil
}
