package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/stockroomhq/inventory-backend/pkg/config"
	"github.com/stockroomhq/inventory-backend/pkg/db"
	"github.com/stockroomhq/inventory-backend/pkg/logger"
	"github.com/stockroomhq/inventory-backend/pkg/migrate"
)

func main() {
	var (
		cmd     = flag.String("cmd", "up", "goose command: up, down, status, version, up-to, down-to, create, validate")
		dir     = flag.String("dir", migrate.DefaultDir, "migrations directory")
		name    = flag.String("name", "", "migration name (create)")
		version = flag.String("version", "", "target version (up-to / down-to)")
	)
	flag.Parse()

	if err := run(*cmd, *dir, *name, *version); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

func run(cmd, dir, name, version string) error {
	switch cmd {
	case "create":
		if name == "" {
			return fmt.Errorf("-name is required for create")
		}
		path, err := migrate.CreateSQLMigration(dir, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "created %s\n", path)
		return nil

	case "validate":
		return migrate.ValidateDir(dir)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logg := logger.New(logger.Options{
		ServiceName: "inventory-migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	ctx := context.Background()
	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	defer client.Close()

	sqlDB, err := client.DB().DB()
	if err != nil {
		return err
	}

	switch cmd {
	case "up-to", "down-to":
		return migrate.MigrateToVersion(ctx, sqlDB, cfg.DB, dir, version)
	default:
		return migrate.Run(ctx, sqlDB, cfg.DB, dir, cmd)
	}
}
