package main

import (
	"github.com/Veraticus/district-atlas/internal/tui"
	"github.com/Veraticus/district-atlas/internal/tui/themes"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open a terminal dashboard with Overview, Districts, Strategies and
Analytics tabs. Press ? inside the dashboard for key bindings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadAtlas(settings.TopN)
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), a.report,
				tui.WithTheme(themes.GetTheme(settings.Theme)),
				tui.WithDecimals(settings.Decimals),
			)
		},
	}
}
