package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	srdview "github.com/goliatone/go-srdview"
	"github.com/goliatone/go-srdview/internal/config"
	"github.com/goliatone/go-srdview/pkg/renderers/tui"
)

// app carries the state shared by the subcommands. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	verbose    bool
	locale     string
	labelsDir  string
	layoutsDir string

	cfg    config.Config
	logger *zap.Logger
	view   *srdview.Config

	driver      tui.PromptDriver
	stdin       io.Reader
	interactive func() bool
}

func newApp() *app {
	return &app{
		stdin:       os.Stdin,
		interactive: stdinIsTerminal,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "srdview",
		Short:         "Labels, layouts and safe rendering for SRD records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.locale, "locale", "", "label locale (default $SRDVIEW_LOCALE or it-IT)")
	flags.StringVar(&a.labelsDir, "labels-dir", "", "directory with locales/<locale>/categories.yaml tables")
	flags.StringVar(&a.layoutsDir, "layouts-dir", "", "directory with layout policy files")

	root.AddCommand(
		newLabelsCmd(a),
		newLayoutCmd(a),
		newShowCmd(a),
		newMarkupCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.locale != "" {
		cfg.Locale = a.locale
	}
	if a.labelsDir != "" {
		cfg.LabelsDir = a.labelsDir
	}
	if a.layoutsDir != "" {
		cfg.LayoutsDir = a.layoutsDir
	}
	a.cfg = cfg

	if a.logger == nil {
		logCfg := zap.NewProductionConfig()
		if a.verbose || cfg.Debug {
			logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := logCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	opts := []srdview.Option{srdview.WithLocale(cfg.Locale)}
	if cfg.LabelsDir != "" {
		opts = append(opts, srdview.WithLabelsFS(os.DirFS(cfg.LabelsDir)))
	}
	if cfg.LayoutsDir != "" {
		opts = append(opts, srdview.WithLayoutsFS(os.DirFS(cfg.LayoutsDir)))
	}
	view, err := srdview.New(opts...)
	if err != nil {
		return err
	}
	a.view = view

	a.logger.Debug("configuration loaded",
		zap.String("locale", view.Locale()),
		zap.String("labels_dir", cfg.LabelsDir),
		zap.String("layouts_dir", cfg.LayoutsDir))
	return nil
}

func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
