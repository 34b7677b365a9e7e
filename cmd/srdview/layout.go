package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-srdview/pkg/layout"
)

func newLayoutCmd(a *app) *cobra.Command {
	var conflicts bool
	cmd := &cobra.Command{
		Use:   "layout [category]",
		Short: "Show the field layout policy of a category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			store := a.view.Layouts()

			if conflicts {
				printConflicts(out, store.Conflicts())
				return nil
			}
			if len(args) == 0 {
				fmt.Fprintln(out, headingStyle.Render("categories"))
				for _, name := range store.Categories() {
					fmt.Fprintf(out, "  %s%s\n", keyStyle.Render(name), a.view.LabelFor(name))
				}
				fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("always hidden:"), strings.Join(store.CommonHide(), ", "))
				return nil
			}

			category := args[0]
			policy, ok := store.LayoutFor(category)
			if !ok {
				fmt.Fprintf(out, "%s: no layout policy, fields are shown in lexical order\n", category)
				return nil
			}
			printPolicy(out, category, a.view.LabelFor(category), policy)
			return nil
		},
	}
	cmd.Flags().BoolVar(&conflicts, "conflicts", false, "list fields aliased differently by two categories")
	return cmd
}

func printPolicy(out io.Writer, category, label string, policy layout.Policy) {
	fmt.Fprintf(out, "%s (%s)\n", headingStyle.Render(label), category)
	fmt.Fprintln(out, mutedStyle.Render("order:"))
	for i, field := range policy.FieldOrder {
		alias, _ := policy.AliasFor(field)
		fmt.Fprintf(out, "  %2d. %s%s\n", i+1, keyStyle.Render(field), alias)
	}

	var extra []string
	for field := range policy.Aliases {
		if policy.Position(field) < 0 {
			extra = append(extra, field)
		}
	}
	sort.Strings(extra)
	if len(extra) > 0 {
		fmt.Fprintln(out, mutedStyle.Render("other aliases:"))
		for _, field := range extra {
			fmt.Fprintf(out, "  %s%s\n", keyStyle.Render(field), policy.Aliases[field])
		}
	}
	fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("hidden:"), strings.Join(policy.Hide, ", "))
}

func printConflicts(out io.Writer, conflicts []layout.Conflict) {
	if len(conflicts) == 0 {
		fmt.Fprintln(out, "no alias conflicts")
		return
	}
	for _, c := range conflicts {
		pairs := make([]string, len(c.Categories))
		for i := range c.Categories {
			pairs[i] = fmt.Sprintf("%s=%q", c.Categories[i], c.Aliases[i])
		}
		fmt.Fprintf(out, "%s%s\n", keyStyle.Render(c.Field), strings.Join(pairs, " "))
	}
}
