package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func districtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "district [name]",
		Short: "Show district demographics",
		Long: `Without a name, list the religious composition of every district.
With a name, show the composition, majority religion, diversity index and
minority share for that district. Names are matched case-insensitively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAtlas(settings.TopN)
			if err != nil {
				return err
			}
			f := newFormatter()

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), f.FormatDistricts(a.report))
				return nil
			}

			name, err := a.resolveDistrict(args[0])
			if err != nil {
				return err
			}
			out, err := f.FormatDistrict(a.report, name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func provinceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "province <name>",
		Short: "Show the average composition of a province",
		Long:  `Show the unweighted average composition of a province's districts, followed by each district's majority religion.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAtlas(settings.TopN)
			if err != nil {
				return err
			}

			province, err := a.resolveProvince(args[0])
			if err != nil {
				return err
			}
			out, err := newFormatter().FormatProvince(a.report, province)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
