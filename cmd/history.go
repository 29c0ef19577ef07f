package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/equicourt/complaint-cli/internal/model"
	"github.com/equicourt/complaint-cli/internal/store"
)

var (
	historyCategory string
	historyLimit    int
	historyOffset   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously processed complaints",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		complaints, err := st.ListComplaints(ctx, store.HistoryFilter{
			Category: model.Category(historyCategory),
			Limit:    historyLimit,
			Offset:   historyOffset,
		})
		if err != nil {
			return eris.Wrap(err, "list complaints")
		}
		if complaints == nil {
			complaints = []model.Complaint{}
		}

		return printJSON(complaints)
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyCategory, "category", "", "filter by category (Theft, Assault, ...)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "max complaints to list (default 50)")
	historyCmd.Flags().IntVar(&historyOffset, "offset", 0, "number of complaints to skip")
	rootCmd.AddCommand(historyCmd)
}
