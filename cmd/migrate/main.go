package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"fastqr.backend/internal/config"
	"fastqr.backend/internal/infrastructure/datasources/postgres"
	"fastqr.backend/internal/infrastructure/models"
)

var openMigrateDB = postgres.NewConnection

type migrator interface {
	AutoMigrate(dst ...interface{}) error
	HasTable(dst interface{}) bool
}

type migrateDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (migrator, io.Closer, error)
	out     io.Writer
}

type gormMigrator struct {
	db *gorm.DB
}

func (m gormMigrator) AutoMigrate(dst ...interface{}) error { return m.db.AutoMigrate(dst...) }
func (m gormMigrator) HasTable(dst interface{}) bool        { return m.db.Migrator().HasTable(dst) }

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultMigrateDeps() migrateDeps {
	return migrateDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (migrator, io.Closer, error) {
			db, err := openMigrateDB(cfg.Database)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}
			sqlDB, err := db.DB()
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}
			return gormMigrator{db: db}, sqlDB, nil
		},
		out: os.Stdout,
	}
}

func tableName(model interface{}) string {
	if t, ok := model.(interface{ TableName() string }); ok {
		return t.TableName()
	}
	return fmt.Sprintf("%T", model)
}

// runMigrate creates or updates the schema. With -check it only reports missing tables.
func runMigrate(args []string, deps migrateDeps) error {
	def := defaultMigrateDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.prepare == nil {
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = def.out
	}

	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	checkOnly := fs.Bool("check", false, "report missing tables without changing the schema")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	m, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	if *checkOnly {
		var missing []string
		for _, model := range models.All() {
			if !m.HasTable(model) {
				missing = append(missing, tableName(model))
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing tables: %v", missing)
		}
		_, _ = fmt.Fprintln(deps.out, "schema is up to date")
		return nil
	}

	if err := m.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	for _, model := range models.All() {
		_, _ = fmt.Fprintf(deps.out, "migrated %s\n", tableName(model))
	}
	return nil
}

func main() {
	if err := runMigrate(os.Args[1:], defaultMigrateDeps()); err != nil {
		log.Fatal(err)
	}
}
