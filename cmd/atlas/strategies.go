package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/district-atlas/internal/cli"
	"github.com/spf13/cobra"
)

func strategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies [name]",
		Short: "Show engagement strategies",
		Long: `Without a name, summarise strategy themes and list districts that have no
strategies yet. With a name, list that district's strategies in order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAtlas(settings.TopN)
			if err != nil {
				return err
			}
			f := newFormatter()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				name, err := a.resolveDistrict(args[0])
				if err != nil {
					return err
				}
				text, err := f.FormatStrategies(a.report, name)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, text)
				return nil
			}

			fmt.Fprintln(out, f.FormatThemes(a.report))
			fmt.Fprintln(out)

			uncovered := a.classifier.Uncovered()
			if len(uncovered) == 0 {
				fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("All %d districts have strategies", a.demographics.Len())))
				return nil
			}
			fmt.Fprintln(out, cli.FormatWarning("Districts without strategies: "+strings.Join(uncovered, ", ")))
			return nil
		},
	}
}
