package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/district-atlas/internal/cli"
	"github.com/Veraticus/district-atlas/internal/common"
	"github.com/Veraticus/district-atlas/internal/config"
	"github.com/Veraticus/district-atlas/internal/report"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		formatName string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the report tables",
		Long: `Export every report table as JSON, YAML or TOML, or the district
demographics table as CSV. Writes to stdout unless --output is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := report.ParseFormat(formatName)
			if err != nil {
				return common.NewUserError(
					fmt.Sprintf("Unsupported format (choose from %s)", strings.Join(formatNames(), ", ")), err)
			}

			a, err := loadAtlas(settings.TopN)
			if err != nil {
				return err
			}

			if outputPath == "" {
				return report.Encode(cmd.OutOrStdout(), format, a.report)
			}

			path := config.ExpandPath(outputPath)
			if err := writeFile(path, func(w io.Writer) error {
				return report.Encode(w, format, a.report)
			}); err != nil {
				common.LogError(err, "Export failed", common.Fields{"path": path, "format": string(format)})
				return err
			}

			common.LogInfo("Report exported", common.Fields{"path": path, "format": string(format)})
			fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess("Exported "+string(format)+" report to "+path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", string(report.FormatJSON), "output format (json, yaml, toml, csv)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func formatNames() []string {
	names := make([]string, 0, len(report.Formats))
	for _, f := range report.Formats {
		names = append(names, string(f))
	}
	return names
}
