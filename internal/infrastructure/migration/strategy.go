package migration

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"datarequests/internal/shared/logger"
)

const (
	StrategyAuto  = "auto"
	StrategyGoose = "goose"
)

//go:embed scripts/*/*.sql
var scripts embed.FS

// goose keeps its dialect and filesystem in package state.
var gooseMu sync.Mutex

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate brings the schema up to date.
	Migrate(ctx context.Context, db *gorm.DB, models ...interface{}) error
	// Version reports the applied schema version, zero when unversioned.
	Version(ctx context.Context, db *gorm.DB) (int64, error)
	GetName() string
}

// NewStrategy returns the strategy registered under name.
func NewStrategy(name string) (Strategy, error) {
	switch name {
	case StrategyAuto, "":
		return NewGormAutoMigrateStrategy(), nil
	case StrategyGoose:
		return NewGooseStrategy(), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", name)
	}
}

// GormAutoMigrateStrategy derives the schema from the persistence models.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.auto"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("running gorm auto migrate", "models_count", len(models))

	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) Version(context.Context, *gorm.DB) (int64, error) {
	return 0, nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return StrategyAuto
}

// GooseStrategy applies the versioned SQL scripts embedded in the binary.
// The script directory is picked from the connection's dialect.
type GooseStrategy struct {
	logger logger.Interface
}

func NewGooseStrategy() *GooseStrategy {
	return &GooseStrategy{
		logger: logger.NewLogger().With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) Migrate(ctx context.Context, db *gorm.DB, _ ...interface{}) error {
	return s.withGoose(db, func(dir string) error {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}

		current, err := goose.GetDBVersionContext(ctx, sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}
		s.logger.Infow("current migration status", "version", current, "dir", dir)

		if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
			s.logger.Errorw("migration failed", "error", err)
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		final, err := goose.GetDBVersionContext(ctx, sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get final version: %w", err)
		}
		s.logger.Infow("migration completed successfully",
			"from_version", current,
			"to_version", final)
		return nil
	})
}

func (s *GooseStrategy) Version(ctx context.Context, db *gorm.DB) (int64, error) {
	var version int64
	err := s.withGoose(db, func(string) error {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		version, err = goose.GetDBVersionContext(ctx, sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		return nil
	})
	return version, err
}

// MigrateDown rolls back the given number of versions.
func (s *GooseStrategy) MigrateDown(ctx context.Context, db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	return s.withGoose(db, func(dir string) error {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		for i := 0; i < steps; i++ {
			if err := goose.DownContext(ctx, sqlDB, dir); err != nil {
				return fmt.Errorf("failed to run down migration: %w", err)
			}
		}
		return nil
	})
}

func (s *GooseStrategy) GetName() string {
	return StrategyGoose
}

func (s *GooseStrategy) withGoose(db *gorm.DB, fn func(dir string) error) error {
	dialect, err := gooseDialect(db)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(scripts)
	goose.SetLogger(gooseLogger{s.logger})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return fn("scripts/" + dialect)
}

func gooseDialect(db *gorm.DB) (string, error) {
	switch name := db.Dialector.Name(); name {
	case "sqlite":
		return "sqlite3", nil
	case "mysql":
		return "mysql", nil
	default:
		return "", fmt.Errorf("no migration scripts for dialect %q", name)
	}
}

type gooseLogger struct {
	logger logger.Interface
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
