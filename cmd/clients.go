package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"

	"github.com/equicourt/complaint-cli/internal/store"
	"github.com/equicourt/complaint-cli/pkg/mlservice"
)

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "equicourt.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, nil)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

func newMLClient() mlservice.Client {
	return mlservice.NewClient(
		mlservice.WithBaseURL(cfg.ML.BaseURL),
		mlservice.WithTimeout(time.Duration(cfg.ML.TimeoutSecs)*time.Second),
		mlservice.WithRateLimit(cfg.ML.RateLimitRPS, cfg.ML.RateLimitBurst),
	)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
