package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/equicourt/complaint-cli/internal/fallback"
)

var ipcbnsCmd = &cobra.Command{
	Use:   "ipcbns <section>",
	Short: "Compare an IPC section with its BNS counterpart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		section := args[0]

		cmp, err := newMLClient().IPCBNSComparison(ctx, section)
		if err != nil {
			zap.L().Warn("remote comparison unavailable, using local mapping",
				zap.String("section", section), zap.Error(err))
			local := fallback.IPCBNSComparison(section)
			cmp = &local
		}

		return printJSON(cmp)
	},
}

func init() {
	rootCmd.AddCommand(ipcbnsCmd)
}
