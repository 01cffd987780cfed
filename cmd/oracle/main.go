package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"oracle/internal/catalog"
	"oracle/internal/config"
	"oracle/internal/history"
	"oracle/internal/i18n"
	"oracle/internal/pipeline"
	"oracle/internal/provider"
	"oracle/internal/session"
	"oracle/internal/tui"
)

func main() {
	var (
		configPath string
		dataDir    string
		useTUI     bool
	)
	flag.StringVar(&configPath, "config", "", "Path to config JSON/JSONC")
	flag.StringVar(&dataDir, "data", "", "Data directory override")
	flag.BoolVar(&useTUI, "tui", true, "Run the full-screen TUI (false for line-mode REPL)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	if d := strings.TrimSpace(dataDir); d != "" {
		cfg.Storage.DataDir = d
	}
	i18n.Init(cfg.UI.Locale)

	store, warn := history.Open(cfg.Storage.DataDir)
	if warn != nil {
		fmt.Fprintf(os.Stderr, "history storage degraded: %v\n", warn)
	}
	defer store.Close()

	engine := catalog.NewEngine()
	ctrl := session.New(engine, store)

	prov := provider.NewOpenAIProvider(provider.OpenAIConfig{
		BaseURL:   cfg.Provider.BaseURL,
		APIKey:    cfg.Provider.APIKey,
		Model:     cfg.Provider.Model,
		TimeoutMS: cfg.Provider.TimeoutMS,
	})
	gateway := pipeline.NewGateway()
	insight := pipeline.NewInsight(prov, gateway, engine)
	reflection := pipeline.NewReflection(prov, gateway)

	if useTUI {
		if err := tui.Run(ctrl, insight, reflection, cfg.UI.ShakeDurationMS); err != nil {
			fmt.Fprintf(os.Stderr, "tui failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runREPL(ctrl, insight, reflection, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "repl failed: %v\n", err)
		os.Exit(1)
	}
}
