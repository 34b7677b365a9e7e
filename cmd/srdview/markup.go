package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-srdview/pkg/markup"
)

func newMarkupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "markup [file]",
		Short: "Convert markdown to sanitized HTML",
		Long:  "Reads markdown from file, or stdin when no file is given, and prints the sanitized HTML.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 1 && args[0] != "-" {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(a.stdin)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.view.ToSafeHTML(markup.FromValue(data)))
			return err
		},
	}
}
