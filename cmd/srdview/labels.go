package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLabelsCmd(a *app) *cobra.Command {
	var listLocales bool
	cmd := &cobra.Command{
		Use:   "labels [category...]",
		Short: "Print the localized label of categories",
		Long: `Without arguments, prints every category of the selected locale.
Unknown categories print unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if listLocales {
				for _, locale := range a.view.Catalog().Locales() {
					fmt.Fprintln(out, headingStyle.Render(locale))
				}
				return nil
			}

			table := a.view.Labels()
			keys := args
			if len(keys) == 0 {
				keys = table.Keys()
			}
			for _, key := range keys {
				fmt.Fprintf(out, "%s%s\n", keyStyle.Render(key), table.LabelFor(key))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&listLocales, "locales", false, "list the available locales instead")
	return cmd
}
