package migrate

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"datarequests/internal/infrastructure/config"
	"datarequests/internal/infrastructure/database"
	"datarequests/internal/infrastructure/migration"
	"datarequests/internal/shared/logger"
)

var (
	configPath  string
	name        string
	steps       int
	scriptsPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending goose migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of goose migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the configured strategy, the applied version and which tables exist.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create empty goose migration files, one per supported dialect.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&scriptsPath, "dir", "./internal/infrastructure/migration/scripts", "Scripts directory")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(configPath, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations")

	manager := migration.NewManager(database.Get(), migration.NewGooseStrategy())
	if err := manager.EnsureSchema(cmd.Context()); err != nil {
		log.Errorw("migration failed", "error", err)
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "steps", steps)

	if err := migration.NewGooseStrategy().MigrateDown(cmd.Context(), database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	manager, err := migration.NewManagerForName(database.Get(), cfg.Database.MigrationStrategy)
	if err != nil {
		return err
	}

	status, err := manager.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Driver:          %s\n", cfg.Database.Driver)
	fmt.Fprintf(out, "  Strategy:        %s\n", status.Strategy)
	fmt.Fprintf(out, "  Current Version: %d\n", status.Version)

	tables := make([]string, 0, len(status.Tables))
	for table := range status.Tables {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		state := "missing"
		if status.Tables[table] {
			state = "present"
		}
		fmt.Fprintf(out, "  %-24s %s\n", table, state)
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(scriptsPath)
	if err != nil {
		return fmt.Errorf("failed to get scripts path: %w", err)
	}

	paths, err := migration.NewGenerator(dir).CreateMigration(name)
	if err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", p)
	}
	return nil
}
