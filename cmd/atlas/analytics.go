package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func analyticsCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show diversity rankings and strategic priorities",
		Long: `Rank districts by Simpson's diversity index, show the strategy
development priority of every district, and summarise each province.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("top") {
				top = settings.TopN
			}
			if top < 1 {
				return fmt.Errorf("--top must be at least 1, got %d", top)
			}

			a, err := loadAtlas(top)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), newFormatter().FormatAnalytics(a.report))
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 5, "number of districts in the diversity ranking (default from analytics.top_n)")

	return cmd
}
