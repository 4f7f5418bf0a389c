package main

import (
	"github.com/spf13/cobra"
)

func newMappingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mapping",
		Short: "Print the active metric mapping table as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.table.Encode(cmd.OutOrStdout())
		},
	}
}
