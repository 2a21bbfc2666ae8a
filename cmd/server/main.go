// Package main is the entry point for the mouldflow API server.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	seedcatalog "mouldflow/adapters/catalog"
	"mouldflow/api"
	"mouldflow/core/catalog"
	"mouldflow/db"
	"mouldflow/internal/config"
	"mouldflow/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgFile := flag.String("config", "", "config file (default is $HOME/.mouldflow/config.json)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	catalogDir := flag.String("catalog", "", "directory of .hcl catalog files (overrides the built-in catalog)")
	flag.Parse()

	if err := run(*cfgFile, *addr, *dbPath, *catalogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgFile, addr, dbPath, catalogDir string) error {
	cfg := config.Get()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		config.Set(cfg)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if catalogDir != "" {
		cfg.Catalog.Dir = catalogDir
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer logging.Sync()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	conn, err := db.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := db.Migrate(conn); err != nil {
		return err
	}

	var cat *catalog.Catalog
	if cfg.Catalog.Dir != "" {
		cat, err = seedcatalog.LoadDir(cfg.Catalog.Dir)
	} else {
		cat, err = seedcatalog.LoadDefault()
	}
	if err != nil {
		return err
	}

	logging.Info("catalog loaded",
		zap.Int("materials", cat.MaterialCount()),
		zap.Int("machines", cat.MachineCount()))

	server := api.NewServer(version, db.NewStore(conn), cat,
		api.WithMaxUploadBytes(cfg.Server.MaxUploadBytes))
	return server.ListenAndServe(cfg.Server.Addr)
}
