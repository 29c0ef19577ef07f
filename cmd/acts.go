package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/equicourt/complaint-cli/internal/fallback"
)

var actsQuery string

var actsCmd = &cobra.Command{
	Use:   "acts",
	Short: "List or search the legal acts catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		acts, err := newMLClient().LegalActs(ctx)
		if err != nil {
			zap.L().Warn("remote legal acts unavailable, using local catalogue", zap.Error(err))
			acts = fallback.LegalActs()
		}

		if actsQuery != "" {
			acts = fallback.FilterLegalActs(acts, actsQuery)
		}

		return printJSON(acts)
	},
}

func init() {
	actsCmd.Flags().StringVar(&actsQuery, "query", "", "filter acts by name, category or summary")
	rootCmd.AddCommand(actsCmd)
}
