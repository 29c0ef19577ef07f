package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/equicourt/complaint-cli/internal/model"
	"github.com/equicourt/complaint-cli/internal/pipeline"
	"github.com/equicourt/complaint-cli/internal/store"
)

var (
	batchDir         string
	batchLanguage    string
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process a directory of complaint text files",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		entries, err := os.ReadDir(batchDir)
		if err != nil {
			return eris.Wrapf(err, "read directory %s", batchDir)
		}

		var files []string
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
				continue
			}
			files = append(files, filepath.Join(batchDir, entry.Name()))
		}
		if len(files) == 0 {
			zap.L().Info("no complaint files found", zap.String("dir", batchDir))
			return nil
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		p := pipeline.New(newMLClient())

		var processed, failed atomic.Int64
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(batchConcurrency)

		for _, file := range files {
			g.Go(func() error {
				if err := runBatchFile(gctx, p, st, file); err != nil {
					failed.Add(1)
					zap.L().Error("batch file failed", zap.String("file", file), zap.Error(err))
					return nil
				}
				processed.Add(1)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		if _, err := st.Trim(ctx, cfg.History.MaxEntries); err != nil {
			zap.L().Warn("trim history failed", zap.Error(err))
		}

		zap.L().Info("batch complete",
			zap.Int64("processed", processed.Load()),
			zap.Int64("failed", failed.Load()),
		)
		return nil
	},
}

func runBatchFile(ctx context.Context, p *pipeline.Orchestrator, st store.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrap(err, "read file")
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return eris.New("empty complaint file")
	}

	env := p.Process(ctx, text, model.LanguageCode(batchLanguage))
	saved, err := st.SaveComplaint(ctx, text, model.LanguageCode(batchLanguage), env)
	if err != nil {
		return eris.Wrap(err, "save complaint")
	}

	zap.L().Info("complaint processed",
		zap.String("file", filepath.Base(path)),
		zap.String("id", saved.ID),
		zap.String("category", string(env.Classification.Category)),
		zap.Int("severity", env.Severity.Score),
	)
	return nil
}

func init() {
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "directory of .txt complaint files (required)")
	batchCmd.Flags().StringVar(&batchLanguage, "language", "en", "source language code for all files")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "max files processed in parallel")
	_ = batchCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(batchCmd)
}
