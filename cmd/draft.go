package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/equicourt/complaint-cli/internal/draft"
	"github.com/equicourt/complaint-cli/internal/model"
)

var (
	draftID     string
	draftOutput string
	draftJSON   bool
	draftInfo   model.ComplainantInfo
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Generate an FIR draft for a processed complaint",
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

		c, err := st.GetComplaint(ctx, draftID)
		if err != nil {
			return eris.Wrapf(err, "load complaint %s", draftID)
		}

		d, err := draft.Generate(c, draftInfo, time.Now())
		if err != nil {
			return eris.Wrap(err, "generate draft")
		}

		if draftOutput != "" {
			if err := os.WriteFile(draftOutput, []byte(d.Text), 0644); err != nil {
				return eris.Wrapf(err, "write draft to %s", draftOutput)
			}
			return nil
		}
		if draftJSON {
			return printJSON(d)
		}
		fmt.Println(d.Text)
		return nil
	},
}

func init() {
	draftCmd.Flags().StringVar(&draftID, "id", "", "complaint ID (required)")
	draftCmd.Flags().StringVar(&draftOutput, "output", "", "write the draft text to a file")
	draftCmd.Flags().BoolVar(&draftJSON, "json", false, "print the full draft record as JSON")
	draftCmd.Flags().StringVar(&draftInfo.Name, "name", "", "complainant name")
	draftCmd.Flags().StringVar(&draftInfo.Address, "address", "", "complainant address")
	draftCmd.Flags().StringVar(&draftInfo.Contact, "contact", "", "complainant contact")
	draftCmd.Flags().StringVar(&draftInfo.PoliceStation, "police-station", "", "police station")
	draftCmd.Flags().StringVar(&draftInfo.District, "district", "", "district")
	draftCmd.Flags().StringVar(&draftInfo.State, "state", "", "state")
	draftCmd.Flags().StringVar(&draftInfo.IncidentDate, "incident-date", "", "date of incident")
	draftCmd.Flags().StringVar(&draftInfo.IncidentTime, "incident-time", "", "time of incident")
	draftCmd.Flags().StringVar(&draftInfo.IncidentPlace, "incident-place", "", "place of occurrence")
	_ = draftCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(draftCmd)
}
