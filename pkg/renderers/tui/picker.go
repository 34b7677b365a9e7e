package tui

import (
	"context"
	"fmt"

	"github.com/goliatone/go-srdview/pkg/labels"
	"github.com/goliatone/go-srdview/pkg/records"
)

// Choice is one selectable category.
type Choice struct {
	Key   string
	Label string
}

func (c Choice) display() string {
	if c.Label == "" || c.Label == c.Key {
		return c.Key
	}
	return fmt.Sprintf("%s (%s)", c.Label, c.Key)
}

// ChoicesFromTable lists every category in table, sorted by key.
func ChoicesFromTable(table *labels.Table) []Choice {
	keys := table.Keys()
	out := make([]Choice, 0, len(keys))
	for _, key := range keys {
		out = append(out, Choice{Key: key, Label: table.LabelFor(key)})
	}
	return out
}

// PickCategory asks the user to choose one of choices and returns its key.
func PickCategory(ctx context.Context, driver PromptDriver, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoOptions
	}
	if driver == nil {
		driver = NewSurveyDriver()
	}

	options := make([]string, len(choices))
	for i, choice := range choices {
		options[i] = choice.display()
	}

	idx, err := driver.Select(ctx, SelectConfig{
		Message:  "Categoria",
		Options:  options,
		PageSize: 12,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(choices) {
		return "", fmt.Errorf("tui: selection %d out of range", idx)
	}
	return choices[idx].Key, nil
}

// PickReference asks the user to choose one record of a category listing
// and returns its index.
func PickReference(ctx context.Context, driver PromptDriver, refs []records.Reference) (string, error) {
	if len(refs) == 0 {
		return "", ErrNoOptions
	}
	if driver == nil {
		driver = NewSurveyDriver()
	}

	options := make([]string, len(refs))
	for i, ref := range refs {
		options[i] = ref.Name
		if options[i] == "" {
			options[i] = ref.Index
		}
	}

	idx, err := driver.Select(ctx, SelectConfig{
		Message:  "Voce",
		Options:  options,
		PageSize: 15,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(refs) {
		return "", fmt.Errorf("tui: selection %d out of range", idx)
	}
	return refs[idx].Index, nil
}

// AskPath prompts for a record file path. Blank answers are rejected.
func AskPath(ctx context.Context, driver PromptDriver, message string) (string, error) {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	return driver.Input(ctx, InputConfig{
		Message: message,
		Validator: func(value string) error {
			if value == "" {
				return fmt.Errorf("a path is required")
			}
			return nil
		},
	})
}
