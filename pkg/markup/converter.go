package markup

import (
	"bytes"
	stdhtml "html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Converter turns markdown into sanitized HTML. It is safe for concurrent
// use.
type Converter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// Option configures a Converter.
type Option func(*config)

type config struct {
	policy    *bluemonday.Policy
	hardWraps bool
}

// WithPolicy replaces the sanitizer policy.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// WithHardWraps renders single newlines inside paragraphs as <br>.
func WithHardWraps() Option {
	return func(cfg *config) {
		cfg.hardWraps = true
	}
}

// New constructs a Converter.
func New(opts ...Option) *Converter {
	cfg := config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.policy == nil {
		cfg.policy = DefaultPolicy()
	}

	rendererOpts := []goldmark.Option{
		goldmark.WithParser(newParser()),
		goldmark.WithExtensions(extension.Strikethrough),
	}
	htmlOpts := []renderer.Option{html.WithUnsafe()}
	if cfg.hardWraps {
		htmlOpts = append(htmlOpts, html.WithHardWraps())
	}
	rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(htmlOpts...))

	return &Converter{
		md:     goldmark.New(rendererOpts...),
		policy: cfg.policy,
	}
}

// newParser is goldmark's CommonMark parser without the HTML block parser.
// Raw HTML is then always read inline, so markdown following a tag on the
// same line is still converted before the sanitizer drops the tag.
func newParser() parser.Parser {
	return parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewSetextHeadingParser(), 100),
			util.Prioritized(parser.NewThematicBreakParser(), 200),
			util.Prioritized(parser.NewListParser(), 300),
			util.Prioritized(parser.NewListItemParser(), 400),
			util.Prioritized(parser.NewCodeBlockParser(), 500),
			util.Prioritized(parser.NewATXHeadingParser(), 600),
			util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
			util.Prioritized(parser.NewBlockquoteParser(), 800),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	)
}

// Convert renders in as sanitized HTML. Empty input yields "". Markdown the
// parser cannot handle degrades to escaped literal text.
func (c *Converter) Convert(in Input) string {
	if in.IsEmpty() {
		return ""
	}
	if c == nil {
		return Default().Convert(in)
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(in.String()), &buf); err != nil {
		return c.policy.Sanitize(stdhtml.EscapeString(in.String()))
	}
	return string(c.policy.SanitizeBytes(buf.Bytes()))
}

var (
	defaultConverterOnce sync.Once
	defaultConverter     *Converter
)

// Default returns a shared Converter built with the default options.
func Default() *Converter {
	defaultConverterOnce.Do(func() {
		defaultConverter = New()
	})
	return defaultConverter
}

// ToSafeHTML converts in with the shared default Converter.
func ToSafeHTML(in Input) string {
	return Default().Convert(in)
}
