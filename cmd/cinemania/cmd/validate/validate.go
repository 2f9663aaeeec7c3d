// Package validate provides the command that checks a movies file without
// loading it into the catalog.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/cinemania/internal/appcontext"
	"github.com/agentstation/cinemania/internal/cmd/alerts"
	"github.com/agentstation/cinemania/internal/cmd/cmdutil"
	"github.com/agentstation/cinemania/internal/cmd/output"
	"github.com/agentstation/cinemania/internal/cmd/table"
	"github.com/agentstation/cinemania/pkg/csvio"
	"github.com/agentstation/cinemania/pkg/errors"
)

// ErrLinesSkipped is returned in strict mode when any line was not imported.
var ErrLinesSkipped = errors.New("lines skipped")

// NewCommand creates the validate command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "validate <file>",
		GroupID: "management",
		Short:   "Check a movies file and report rejected lines",
		Long: `Validate imports file into an empty catalog and reports every line that
would be skipped, with the reason. Nothing is saved.`,
		Example: `  cinemania validate movies.csv
  cinemania validate movies.csv --strict -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail if any line is skipped")
	return cmd
}

func run(cmd *cobra.Command, app appcontext.Interface, path string, strict bool) error {
	result, err := csvio.Import(cmd.Context(), app.NewStore(), path)
	if err != nil {
		return err
	}

	format := cmdutil.Format(app)
	if err := writeReport(cmd, format, result); err != nil {
		return err
	}

	if strict && len(result.Skipped) > 0 {
		return fmt.Errorf("%s: %d of %d %w", path, len(result.Skipped), result.Lines, ErrLinesSkipped)
	}
	return nil
}

func writeReport(cmd *cobra.Command, format output.Format, result *csvio.ImportResult) error {
	if !format.IsTable() {
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), result)
	}

	alert := alerts.NewSuccess("%s: %d movies valid", result.Source, result.Imported)
	if len(result.Skipped) > 0 {
		alert = alerts.NewWarning("%s: %d movies valid, %d lines skipped", result.Source, result.Imported, len(result.Skipped)).
			WithDetails(
				fmt.Sprintf("duplicates: %d", result.Duplicates),
				fmt.Sprintf("invalid: %d", result.Invalid),
				fmt.Sprintf("rejected: %d", result.Rejected),
			)
	}
	writer := alerts.NewFormatWriter(cmd.ErrOrStderr(), format)
	if err := writer.WriteAlert(alert); err != nil {
		return err
	}

	if len(result.Skipped) == 0 {
		return nil
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), table.ImportResultToTableData(result))
}
