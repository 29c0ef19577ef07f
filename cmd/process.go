package main

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/equicourt/complaint-cli/internal/model"
	"github.com/equicourt/complaint-cli/internal/pipeline"
)

var (
	processText     string
	processFile     string
	processLanguage string
	processSave     bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run a complaint through the processing pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		text := processText
		if processFile != "" {
			data, err := os.ReadFile(processFile)
			if err != nil {
				return eris.Wrapf(err, "read complaint file %s", processFile)
			}
			text = strings.TrimSpace(string(data))
		}
		if text == "" {
			return eris.New("complaint text is required (--text or --file)")
		}

		p := pipeline.New(newMLClient())
		env := p.Process(ctx, text, model.LanguageCode(processLanguage))

		if processSave {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Migrate(ctx); err != nil {
				return eris.Wrap(err, "migrate store")
			}

			saved, err := st.SaveComplaint(ctx, text, model.LanguageCode(processLanguage), env)
			if err != nil {
				return eris.Wrap(err, "save complaint")
			}
			if _, err := st.Trim(ctx, cfg.History.MaxEntries); err != nil {
				zap.L().Warn("trim history failed", zap.Error(err))
			}
			zap.L().Info("complaint saved", zap.String("id", saved.ID))
			return printJSON(saved)
		}

		return printJSON(env)
	},
}

func init() {
	processCmd.Flags().StringVar(&processText, "text", "", "complaint text")
	processCmd.Flags().StringVar(&processFile, "file", "", "file containing complaint text")
	processCmd.Flags().StringVar(&processLanguage, "language", "en", "source language code (en, hi, ta)")
	processCmd.Flags().BoolVar(&processSave, "save", false, "save the processed complaint to history")
	rootCmd.AddCommand(processCmd)
}
