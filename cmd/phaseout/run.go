package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Zander1983/WindAndSolar/internal/config"
	"github.com/Zander1983/WindAndSolar/internal/server"
	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/engine"
	"github.com/Zander1983/WindAndSolar/pkg/presets"
)

func runSize(cmd *cobra.Command, opts *scenarioOptions, args []string, asJSON bool) error {
	sc, err := opts.load(cmd.Flags(), args)
	if err != nil {
		return err
	}

	res, report, err := engine.Run(sc)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidInput) {
			printValidationReport(report)
			return fmt.Errorf("scenario has validation errors")
		}
		return err
	}

	if asJSON {
		output := map[string]any{
			"scenario":   sc.Name,
			"country":    sc.Country,
			"parameters": sc.Parameters,
			"result":     res,
			"validation": report,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	printHeader(sc)
	printSectors(res)
	fmt.Println()
	printGrid(res)
	if res.Storage.Enabled {
		fmt.Println()
		printStorage(res)
	}
	fmt.Println()
	printEmissions(res)

	if len(report.Warnings) > 0 || len(report.Info) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runValidate(cmd *cobra.Command, opts *scenarioOptions, args []string) error {
	sc, err := opts.load(cmd.Flags(), args)
	if err != nil {
		return err
	}

	// Run the engine for analytical validation
	_, report, err := engine.Run(sc)
	if err != nil && !errors.Is(err, engine.ErrInvalidInput) {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runPresets(dir string, args []string) error {
	var src presets.Source = presets.Embedded()
	if dir != "" {
		src = presets.Chain{presets.Dir(dir), presets.Embedded()}
	}

	if len(args) == 1 {
		sc, err := src.Get(args[0])
		if err != nil {
			return err
		}
		return printYAML(sc)
	}

	list, err := src.List()
	if err != nil {
		return err
	}
	printPresetList(list)
	return nil
}

func runAssumptions(args []string) error {
	if len(args) == 1 {
		set, err := assumptions.Lookup(args[0])
		if err != nil {
			return err
		}
		return printYAML(set)
	}

	for _, v := range assumptions.Versions() {
		set, _ := assumptions.Lookup(v)
		marker := " "
		if v == assumptions.DefaultVersion {
			marker = "*"
		}
		fmt.Printf("%s %-4s %s\n", marker, v, set.Description)
	}
	return nil
}

// serveOverrides carries the serve flags; a flag only wins over the
// environment when it was set.
type serveOverrides struct {
	port        int
	cacheSize   int
	presetsDir  string
	assumptions string
	debug       bool
}

func runServe(cmd *cobra.Command, o serveOverrides) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	if fs.Changed("port") {
		cfg.Port = o.port
	}
	if fs.Changed("cache-size") {
		cfg.CacheSize = o.cacheSize
	}
	if fs.Changed("presets-dir") {
		cfg.PresetsDir = o.presetsDir
	}
	if fs.Changed("assumptions") {
		cfg.Assumptions = o.assumptions
	}
	if fs.Changed("debug") {
		cfg.Debug = o.debug
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	var src presets.Source = presets.Embedded()
	if cfg.PresetsDir != "" {
		src = presets.Chain{presets.Dir(cfg.PresetsDir), presets.Embedded()}
	}

	srv, err := server.New(cfg, src, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Start(ctx)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func printYAML(v any) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(v)
}
