package layout

import "strings"

// Option configures a Store.
type Option func(*storeConfig)

type storeConfig struct {
	commonHide []string
}

func newStoreConfig(opts []Option) storeConfig {
	cfg := storeConfig{commonHide: append([]string(nil), DefaultCommonHide...)}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithCommonHide replaces the fields hidden for every category. Blank entries
// are ignored; passing no fields disables common hiding.
func WithCommonHide(fields ...string) Option {
	return func(cfg *storeConfig) {
		if cfg == nil {
			return
		}
		cfg.commonHide = cfg.commonHide[:0]
		for _, field := range fields {
			if trimmed := strings.TrimSpace(field); trimmed != "" {
				cfg.commonHide = append(cfg.commonHide, trimmed)
			}
		}
	}
}
