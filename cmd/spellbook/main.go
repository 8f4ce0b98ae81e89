// Package main is the entry point for the spellbook ability bar.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/spellbook/data"
	"github.com/samdwyer/spellbook/internal/ability"
	"github.com/samdwyer/spellbook/internal/config"
	"github.com/samdwyer/spellbook/internal/game"
	"github.com/samdwyer/spellbook/internal/gamedata"
	"github.com/samdwyer/spellbook/internal/spells"
	"github.com/samdwyer/spellbook/internal/telemetry"
)

const defaultConfigPath = "config/spellbook.yaml"

func main() {
	// Load .env file for local development.
	// Not fatal, env vars might be set directly.
	envErr := godotenv.Load()

	cfgPath := os.Getenv("SPELLBOOK_CONFIG")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr; the terminal UI draws on the tty.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	if envErr != nil {
		slog.Debug(".env file not loaded", "err", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			slog.Warn("telemetry setup failed, running without observability", "err", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					slog.Error("shutting down telemetry", "err", err)
				}
			}()
		}
	}

	store := gamedata.Open(ctx, definitionFS(cfg), cfg.DefinitionFiles...)

	loadout, err := ability.NewLoadout(store, variants(cfg.Slots)...)
	if err != nil {
		// Slots that failed to bind are left off the bar.
		slog.Error("some abilities could not be bound", "err", err)
	}
	if loadout.Len() == 0 {
		slog.Error("no abilities available, nothing to show")
		os.Exit(1)
	}

	g, err := game.New(loadout, game.Config{TickInterval: cfg.TickInterval()})
	if err != nil {
		slog.Error("failed to initialize terminal", "err", err)
		os.Exit(1)
	}

	if err := g.Run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("game loop", "err", err)
		os.Exit(1)
	}
}

// definitionFS returns the directory holding the definition files, or the
// embedded data when none is configured.
func definitionFS(cfg config.Config) fs.FS {
	if cfg.DataDir == "" {
		return data.FS()
	}
	return os.DirFS(cfg.DataDir)
}

// variants resolves the configured slot identities, falling back to the
// whole fire mage kit.
func variants(slots []string) []ability.Variant {
	if len(slots) == 0 {
		return spells.FireMage()
	}
	out := make([]ability.Variant, 0, len(slots))
	for _, id := range slots {
		v, ok := spells.Lookup(id)
		if !ok {
			slog.Warn("unknown slot identity, skipping", "identity", id)
			continue
		}
		out = append(out, v)
	}
	return out
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may hold an unexpanded variable reference, so the
	// header is built here.
	apiKey := os.Getenv("HONEYCOMB_SPELLBOOK_API_KEY")
	dataset := os.Getenv("HONEYCOMB_SPELLBOOK_DATASET")
	if dataset == "" {
		dataset = "spellbook"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
