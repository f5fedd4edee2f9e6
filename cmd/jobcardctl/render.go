package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobcard/internal/app"
)

var renderCmd = &cobra.Command{
	Use:   "render <job-card-id>",
	Short: "Render the PDF report of a job card",
	Long: `Render the PDF report of a submitted job card.

The document is written to --output (default: the report file name in the current
directory). With --persist the report is also uploaded to the configured bucket and
its pointer row is updated; an upload failure is reported but does not fail the command.
`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	renderOutput  string
	renderPersist bool
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file ('-' for stdout)")
	renderCmd.Flags().BoolVar(&renderPersist, "persist", false, "Upload the report and record its pointer")
}

func runRender(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid job card id %q", args[0])
	}

	return withApp(cmd.Context(), func(a *app.App, log *zap.Logger) error {
		res, err := a.Reports.Generate(cmd.Context(), id, renderPersist)
		if err != nil {
			return err
		}

		out := renderOutput
		if out == "" {
			out = res.FileName
		}
		if out == "-" {
			_, err = cmd.OutOrStdout().Write(res.Document)
			return err
		}
		if err := os.WriteFile(out, res.Document, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", out, len(res.Document))
		if res.FileURL != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "stored at %s\n", res.FileURL)
		}
		if res.StorageError != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", res.StorageError)
		}
		return nil
	})
}
