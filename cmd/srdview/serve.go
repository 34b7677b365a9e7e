package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-srdview/internal/devserver"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr    string
		origin  string
		allowed []string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development server with the API proxy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if addr != "" {
				cfg.Addr = addr
			}
			if origin != "" {
				cfg.APIOrigin = origin
			}
			if len(allowed) > 0 {
				cfg.AllowedHosts = append(append([]string(nil), cfg.AllowedHosts...), allowed...)
			}

			server, err := devserver.New(cfg,
				devserver.WithLogger(a.logger),
				devserver.WithViewConfig(a.view))
			if err != nil {
				return err
			}
			return server.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $SRDVIEW_ADDR or 127.0.0.1:5173)")
	cmd.Flags().StringVar(&origin, "origin", "", "API origin the proxy forwards to")
	cmd.Flags().StringSliceVar(&allowed, "allowed-host", nil, "extra Host header values accepted by the server")
	return cmd
}
