package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobcard/internal/app"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List maintenance types or the checklist of one type",
	Args:  cobra.NoArgs,
	RunE:  runTemplates,
}

var templatesType string

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.Flags().StringVarP(&templatesType, "type", "t", "", "Maintenance type to show the checklist of")
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	return withApp(cmd.Context(), func(a *app.App, _ *zap.Logger) error {
		out := cmd.OutOrStdout()
		if templatesType == "" {
			types, err := a.Catalog.ListTypes(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range types {
				fmt.Fprintln(out, t)
			}
			return nil
		}

		templates, err := a.Catalog.ListTemplates(cmd.Context(), templatesType)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "INDEX\tID\tORDER\tINPUT\tQUESTION")
		for i, t := range templates {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\n", i, t.ID, t.Order, t.InputKind, t.Question)
		}
		return tw.Flush()
	})
}
