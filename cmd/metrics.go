package main

import (
	"github.com/spf13/cobra"

	"github.com/equicourt/complaint-cli/internal/metrics"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Print the current performance report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(metrics.NewCollector().Snapshot())
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
