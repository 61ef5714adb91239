package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"datarequests/internal/shared/logger"
)

// Dialects lists the script directories kept in sync by the generator.
var Dialects = []string{"mysql", "sqlite3"}

var migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator handles creation of new goose migration files
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

// NewGenerator creates a generator writing under scriptsPath/<dialect>.
func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration writes one empty goose script per dialect, all sharing a
// version, and returns their paths.
func (g *Generator) CreateMigration(name string) ([]string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !migrationNamePattern.MatchString(name) {
		return nil, fmt.Errorf("invalid migration name %q: use lowercase letters, digits and underscores", name)
	}

	version := g.now().UTC().Format("20060102150405")
	fileName := fmt.Sprintf("%s_%s.sql", version, name)

	paths := make([]string, 0, len(Dialects))
	for _, dialect := range Dialects {
		dir := filepath.Join(g.scriptsPath, dialect)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create scripts directory: %w", err)
		}

		path := filepath.Join(dir, fileName)
		if err := g.writeFile(path, g.template(name, dialect)); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	g.logger.Infow("migration files created", "name", name, "files", paths)
	return paths, nil
}

func (g *Generator) template(name, dialect string) string {
	return fmt.Sprintf(`-- Migration: %s (%s)
-- Created at: %s

-- +goose Up

-- +goose Down
`, name, dialect, g.now().UTC().Format(time.RFC3339))
}

func (g *Generator) writeFile(path, content string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
