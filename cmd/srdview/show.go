package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	srdview "github.com/goliatone/go-srdview"
	"github.com/goliatone/go-srdview/pkg/orchestrator"
	"github.com/goliatone/go-srdview/pkg/records"
	"github.com/goliatone/go-srdview/pkg/render"
	"github.com/goliatone/go-srdview/pkg/renderers/html"
	"github.com/goliatone/go-srdview/pkg/renderers/jsonview"
	"github.com/goliatone/go-srdview/pkg/renderers/tui"
)

const fetchTimeout = 15 * time.Second

type showFlags struct {
	category  string
	index     string
	origin    string
	format    string
	presets   string
	wrap      int
	askFile   bool
	templates string
}

func newShowCmd(a *app) *cobra.Command {
	var flags showFlags
	cmd := &cobra.Command{
		Use:   "show [file|-]",
		Short: "Render one record as text, HTML or JSON",
		Long: `Renders a record read from a file, from stdin ("-") or fetched from the
API by --category and --index. When stdin is a terminal and the record is
not fully identified, the category and the entry are chosen interactively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.show(cmd.Context(), cmd.OutOrStdout(), args, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.category, "category", "c", "", "record category, e.g. spells")
	cmd.Flags().StringVarP(&flags.index, "index", "i", "", "record index, e.g. fireball")
	cmd.Flags().StringVar(&flags.origin, "origin", "", "API origin (default $SRDVIEW_API_ORIGIN)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, html or json")
	cmd.Flags().StringVar(&flags.presets, "presets", "", "JSON preset file applied to the record before layout")
	cmd.Flags().IntVar(&flags.wrap, "wrap", 80, "word wrap width for text output")
	cmd.Flags().StringVar(&flags.templates, "templates", "", "directory holding templates/record.tpl for html output")
	cmd.Flags().BoolVar(&flags.askFile, "ask-file", false, "prompt for the path of a local record file")
	return cmd
}

func (a *app) show(ctx context.Context, out io.Writer, args []string, flags showFlags) error {
	gen, err := a.orchestrator(flags)
	if err != nil {
		return err
	}

	origin := flags.origin
	if origin == "" {
		origin = a.cfg.APIOrigin
	}

	req := orchestrator.Request{
		Category: flags.category,
		Renderer: flags.format,
	}

	switch {
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		doc, err := records.NewDocument(records.SourceFromFile("stdin"), data)
		if err != nil {
			return err
		}
		if req.Record, err = doc.Record(); err != nil {
			return err
		}
	case len(args) == 1:
		req.Source = records.SourceFromFile(args[0])
	case flags.askFile:
		if !a.interactive() {
			return errors.New("--ask-file needs an interactive terminal")
		}
		path, err := tui.AskPath(ctx, a.driver, "Record file")
		if err != nil {
			return err
		}
		req.Source = records.SourceFromFile(path)
	default:
		src, category, err := a.resolveRemote(ctx, origin, flags)
		if err != nil {
			return err
		}
		req.Source = src
		req.Category = category
	}

	if req.Category == "" {
		if !a.interactive() {
			return errors.New("--category is required")
		}
		if req.Category, err = tui.PickCategory(ctx, a.driver, tui.ChoicesFromTable(a.view.Labels())); err != nil {
			return err
		}
	}

	a.logger.Debug("rendering record",
		zap.String("category", req.Category),
		zap.String("format", flags.format))

	result, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}
	_, err = out.Write(result.Output)
	return err
}

// resolveRemote builds the API source of the requested record, prompting for
// the missing parts when a terminal is attached.
func (a *app) resolveRemote(ctx context.Context, origin string, flags showFlags) (records.Source, string, error) {
	category, index := flags.category, flags.index
	if category != "" && index != "" {
		return a.apiSource(origin, category, index)
	}
	if !a.interactive() {
		return nil, "", errors.New("a file argument or both --category and --index are required")
	}

	var err error
	if category == "" {
		category, err = tui.PickCategory(ctx, a.driver, tui.ChoicesFromTable(a.view.Labels()))
		if err != nil {
			return nil, "", err
		}
	}

	listing, err := records.SourceFromAPI(origin, category, "")
	if err != nil {
		return nil, "", err
	}
	doc, err := a.loader().Load(ctx, listing)
	if err != nil {
		return nil, "", err
	}
	refs, err := doc.References()
	if err != nil {
		return nil, "", err
	}
	index, err = tui.PickReference(ctx, a.driver, refs)
	if err != nil {
		return nil, "", err
	}

	return a.apiSource(origin, category, index)
}

func (a *app) apiSource(origin, category, index string) (records.Source, string, error) {
	a.logger.Debug("fetching record",
		zap.String("origin", origin),
		zap.String("api_path", records.APIPath(category, index)))
	src, err := records.SourceFromAPI(origin, category, index)
	return src, category, err
}

func (a *app) loader() records.Loader {
	return srdview.NewLoader(records.WithHTTPFallback(fetchTimeout))
}

func (a *app) orchestrator(flags showFlags) (*orchestrator.Orchestrator, error) {
	registry := render.NewRegistry()

	htmlRenderer, err := html.New(
		html.WithDefaultStyles(),
		html.WithLanguage(a.view.Locale()),
		html.WithTemplatesDir(flags.templates),
	)
	if err != nil {
		return nil, err
	}
	textRenderer, err := tui.New(tui.WithWordWrap(flags.wrap))
	if err != nil {
		return nil, err
	}
	for _, renderer := range []render.Renderer{textRenderer, htmlRenderer, jsonview.New(jsonview.WithIndent("  "))} {
		if err := registry.Register(renderer); err != nil {
			return nil, err
		}
	}

	opts := []orchestrator.Option{
		orchestrator.WithLoader(a.loader()),
		orchestrator.WithViewBuilder(a.view.ViewBuilder()),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(textRenderer.Name()),
	}
	if flags.presets != "" {
		data, err := os.ReadFile(flags.presets)
		if err != nil {
			return nil, fmt.Errorf("read presets: %w", err)
		}
		transformer, err := orchestrator.NewJSONPresetTransformer(data)
		if err != nil {
			return nil, err
		}
		opts = append(opts, orchestrator.WithTransformers(transformer))
	}
	return orchestrator.New(opts...), nil
}
