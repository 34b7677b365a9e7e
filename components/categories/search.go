package categories

import (
	"sort"
	"strings"

	"github.com/goliatone/go-srdview/pkg/labels"
)

// Option is one category as served to clients.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionsFromTable lists every category of table ordered by label.
func OptionsFromTable(table *labels.Table) []Option {
	keys := table.Keys()
	out := make([]Option, 0, len(keys))
	for _, key := range keys {
		out = append(out, Option{Value: key, Label: table.LabelFor(key)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Label) < strings.ToLower(out[j].Label)
	})
	return out
}

// Search filters options by a case-insensitive substring of the key or the
// label. Label prefix matches come first, then key prefix matches, then the
// rest; ties keep label order.
func Search(options []Option, query string, limit int, opts Options) []Option {
	limit = opts.pageSize(limit)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchAll {
			if len(options) <= limit {
				return append([]Option{}, options...)
			}
			return append([]Option{}, options[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedOption, 0, len(options))
	for i, option := range options {
		label := strings.ToLower(option.Label)
		key := strings.ToLower(option.Value)
		if !strings.Contains(label, q) && !strings.Contains(key, q) {
			continue
		}
		rank := 2
		switch {
		case strings.HasPrefix(label, q):
			rank = 0
		case strings.HasPrefix(key, q):
			rank = 1
		}
		matches = append(matches, matchedOption{option: option, rank: rank, pos: i})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].pos < matches[j].pos
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Option, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.option)
	}
	return out
}

type matchedOption struct {
	option Option
	rank   int
	pos    int
}
