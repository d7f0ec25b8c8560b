package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/career-matcher/internal/catalog"
	"github.com/jonathan/career-matcher/internal/config"
	"github.com/jonathan/career-matcher/internal/logger"
	"github.com/jonathan/career-matcher/internal/recommender"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// appContext carries what every subcommand needs once flags are parsed.
type appContext struct {
	cfg    *config.Config
	log    *zap.Logger
	engine *recommender.Engine
}

var appCtx *appContext

func setup(cmd *cobra.Command, _ []string) error {
	if outputFormat != formatText && outputFormat != formatJSON {
		return fmt.Errorf("invalid --output %q: must be %s or %s", outputFormat, formatText, formatJSON)
	}

	cfg, err := config.LoadWith(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	engine, err := newEngine(cfg, log)
	if err != nil {
		return err
	}

	appCtx = &appContext{cfg: cfg, log: log, engine: engine}
	log.Debug("command starting", zap.String("command", cmd.Name()))
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if appCtx != nil {
		_ = appCtx.log.Sync()
	}
}

// newEngine builds the recommendation engine over the configured catalog.
func newEngine(cfg *config.Config, log *zap.Logger) (*recommender.Engine, error) {
	cat := catalog.Default()
	source := "built-in"
	if cfg.Catalog != "" {
		loaded, err := catalog.Load(cfg.Catalog)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		cat = loaded
		source = cfg.Catalog
	}

	log.Debug("catalog loaded",
		zap.String("source", source),
		zap.Int("careers", cat.Len()),
		zap.Int("domains", len(cat.Domains())),
	)

	return recommender.New(cat,
		recommender.WithTopN(cfg.Ranking.TopN),
		recommender.WithMinScore(cfg.Ranking.MinScore),
	), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
