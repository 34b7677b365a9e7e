package markup_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-srdview/pkg/markup"
)

var executablePattern = regexp.MustCompile(`(?i)<script|<iframe|<object|<embed|\son[a-z]+\s*=|javascript:|vbscript:|data:text/html`)

func assertSafe(t *testing.T, html string) {
	t.Helper()
	if loc := executablePattern.FindStringIndex(html); loc != nil {
		t.Fatalf("expected no executable content, found %q in %q", html[loc[0]:loc[1]], html)
	}
}

func TestToSafeHTML_StripsScriptKeepsEmphasis(t *testing.T) {
	got := markup.ToSafeHTML(markup.Text("<script>alert(1)</script>**bold**"))
	assertSafe(t, got)
	if strings.Contains(got, "alert") {
		t.Fatalf("script body should be dropped, got %q", got)
	}
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Fatalf("expected emphasized text to survive, got %q", got)
	}
}

func TestToSafeHTML_EmptyInputs(t *testing.T) {
	inputs := []markup.Input{
		markup.Empty(),
		{},
		markup.FromValue(nil),
		markup.FromValue(42),
		markup.FromValue(map[string]any{"desc": "x"}),
		markup.FromValue((*string)(nil)),
		markup.Text(""),
	}
	for _, in := range inputs {
		if got := markup.ToSafeHTML(in); got != "" {
			t.Fatalf("expected empty output for %#v, got %q", in, got)
		}
	}
}

func TestFromValue_TextTypes(t *testing.T) {
	text := "*it*"
	for _, value := range []any{text, &text, []byte(text), markup.Text(text)} {
		in := markup.FromValue(value)
		if in.String() != text || in.IsEmpty() {
			t.Fatalf("FromValue(%#v): expected text input, got %#v", value, in)
		}
	}
}

func TestToSafeHTML_Dialect(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect []string
	}{
		{name: "heading", input: "# Fireball", expect: []string{"<h1>Fireball</h1>"}},
		{name: "emphasis", input: "_slow_ and ~~fast~~", expect: []string{"<em>slow</em>", "<del>fast</del>"}},
		{name: "code span", input: "roll `1d20`", expect: []string{"<code>1d20</code>"}},
		{name: "list", input: "- one\n- two", expect: []string{"<ul>", "<li>one</li>", "<li>two</li>"}},
		{name: "table pipes stay text", input: "| a | b |", expect: []string{"| a | b |"}},
		{
			name:   "link",
			input:  "[SRD](https://www.dndbeyond.com/srd)",
			expect: []string{`href="https://www.dndbeyond.com/srd"`, "nofollow", "noopener", `target="_blank"`, ">SRD</a>"},
		},
		{name: "relative link", input: "[fireball](/spells/fireball)", expect: []string{`href="/spells/fireball"`}},
		{name: "fenced code", input: "```go\nx := 1\n```", expect: []string{`<code class="language-go">`}},
	}
	for _, tc := range cases {
		got := markup.ToSafeHTML(markup.Text(tc.input))
		assertSafe(t, got)
		for _, fragment := range tc.expect {
			if !strings.Contains(got, fragment) {
				t.Fatalf("%s: expected %q in %q", tc.name, fragment, got)
			}
		}
	}
}

func TestToSafeHTML_InjectionVectors(t *testing.T) {
	inputs := []string{
		`[click](javascript:alert(1))`,
		`<img src="x" onerror="alert(1)">`,
		`<a href="javascript:alert(1)">x</a>`,
		`<div onclick="steal()">text</div>`,
		`<iframe src="https://evil.example"></iframe>`,
		"<scr<script>ipt>alert(1)</script>",
		`<a href="data:text/html;base64,PHNjcmlwdD4=">x</a>`,
		"<style>body{display:none}</style>plain",
		`<svg><script>alert(1)</script></svg>`,
		"<SCRIPT>alert(1)</SCRIPT>\n\n# heading",
	}
	for _, input := range inputs {
		got := markup.ToSafeHTML(markup.Text(input))
		assertSafe(t, got)
	}
}

func TestToSafeHTML_MalformedMarkdownDegrades(t *testing.T) {
	got := markup.ToSafeHTML(markup.Text("**unclosed [link]( and `tick"))
	assertSafe(t, got)
	if !strings.Contains(got, "unclosed") {
		t.Fatalf("malformed markdown should render literally, got %q", got)
	}
}

func TestToSafeHTML_Idempotent(t *testing.T) {
	inputs := []string{
		"<script>alert(1)</script>**bold**",
		"# Title\n\n- [x](https://example.com)\n- `code`",
		`<img src=x onerror=alert(1)> *ok*`,
	}
	for _, input := range inputs {
		once := markup.ToSafeHTML(markup.Text(input))
		twice := markup.ToSafeHTML(markup.Text(once))
		assertSafe(t, once)
		assertSafe(t, twice)
	}
}

func TestConverter_Options(t *testing.T) {
	wrapped := markup.New(markup.WithHardWraps()).Convert(markup.Text("line one\nline two"))
	if !strings.Contains(wrapped, "<br") {
		t.Fatalf("hard wraps should emit <br>, got %q", wrapped)
	}

	strict := markup.New(markup.WithPolicy(bluemonday.StrictPolicy())).Convert(markup.Text("**bold**"))
	if strings.Contains(strict, "<strong>") || !strings.Contains(strict, "bold") {
		t.Fatalf("strict policy should drop all tags but keep text, got %q", strict)
	}

	var nilConverter *markup.Converter
	if got := nilConverter.Convert(markup.Text("*x*")); got != "<p><em>x</em></p>\n" {
		t.Fatalf("nil converter should use the default converter, got %q", got)
	}
}
