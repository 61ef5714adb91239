package migration

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"datarequests/internal/infrastructure/persistence/models"
	"datarequests/internal/shared/logger"
)

// Manager owns schema setup for one connection. EnsureSchema is idempotent
// and safe to call from concurrent goroutines.
type Manager struct {
	db       *gorm.DB
	strategy Strategy
	logger   logger.Interface

	mu   sync.Mutex
	done bool
}

// Status describes the schema as seen through the manager's connection.
type Status struct {
	Strategy string          `json:"strategy"`
	Version  int64           `json:"version"`
	Tables   map[string]bool `json:"tables"`
}

// Ready reports whether every required table exists.
func (s *Status) Ready() bool {
	for _, ok := range s.Tables {
		if !ok {
			return false
		}
	}
	return len(s.Tables) > 0
}

func NewManager(db *gorm.DB, strategy Strategy) *Manager {
	return &Manager{
		db:       db,
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// NewManagerForName resolves the strategy by its configured name.
func NewManagerForName(db *gorm.DB, strategyName string) (*Manager, error) {
	strategy, err := NewStrategy(strategyName)
	if err != nil {
		return nil, err
	}
	return NewManager(db, strategy), nil
}

// EnsureSchema creates the data request tables if they are missing.
// A failed setup is tolerated when the tables exist afterwards, which is the
// outcome of another process creating them at the same time.
func (m *Manager) EnsureSchema(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done {
		return nil
	}

	m.logger.Infow("ensuring database schema", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(ctx, m.db, models.All()...); err != nil {
		if !m.tablesPresent(ctx) {
			m.logger.Errorw("schema setup failed", "strategy", m.strategy.GetName(), "error", err)
			return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
		}
		m.logger.Warnw("schema setup reported an error but all tables exist", "error", err)
	}

	m.done = true
	return nil
}

// Status reports the applied version and which tables exist.
func (m *Manager) Status(ctx context.Context) (*Status, error) {
	version, err := m.strategy.Version(ctx, m.db)
	if err != nil {
		return nil, err
	}

	migrator := m.db.WithContext(ctx).Migrator()
	tables := make(map[string]bool, len(models.TableNames()))
	for _, name := range models.TableNames() {
		tables[name] = migrator.HasTable(name)
	}

	return &Status{
		Strategy: m.strategy.GetName(),
		Version:  version,
		Tables:   tables,
	}, nil
}

// Strategy returns the configured strategy.
func (m *Manager) Strategy() Strategy {
	return m.strategy
}

func (m *Manager) tablesPresent(ctx context.Context) bool {
	migrator := m.db.WithContext(ctx).Migrator()
	for _, name := range models.TableNames() {
		if !migrator.HasTable(name) {
			return false
		}
	}
	return true
}
