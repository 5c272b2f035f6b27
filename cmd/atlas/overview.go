package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the national religious composition",
		Long:  `Show the average religious composition across all districts and the majority religion of each district.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadAtlas(settings.TopN)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), newFormatter().FormatOverview(a.report))
			return nil
		},
	}
}
