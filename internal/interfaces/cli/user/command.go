// Package user provides commands for managing the accounts that call the API.
// Users normally live in the host platform; these commands seed local ones.
package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"datarequests/internal/domain/identity"
	"datarequests/internal/infrastructure/auth"
	"datarequests/internal/infrastructure/config"
	"datarequests/internal/infrastructure/database"
	"datarequests/internal/infrastructure/migration"
	"datarequests/internal/infrastructure/repository"
	"datarequests/internal/shared/logger"
)

var (
	configPath  string
	displayName string
	sysadmin    bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage local users",
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newCreateCommand(), newTokenCommand())
	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a user",
		Args:  cobra.ExactArgs(1),
		RunE:  runCreate,
	}

	cmd.Flags().StringVar(&displayName, "display-name", "", "Display name (defaults to the user name)")
	cmd.Flags().BoolVar(&sysadmin, "sysadmin", false, "Grant sysadmin rights")
	return cmd
}

func newTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token <name>",
		Short: "Issue an access token for a user",
		Args:  cobra.ExactArgs(1),
		RunE:  runToken,
	}
}

func initEnv(cmd *cobra.Command) (*config.Config, *repository.UserRepository, error) {
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

	manager, err := migration.NewManagerForName(database.Get(), cfg.Database.MigrationStrategy)
	if err != nil {
		return nil, nil, err
	}
	if err := manager.EnsureSchema(cmd.Context()); err != nil {
		return nil, nil, err
	}

	return cfg, repository.NewUserRepository(database.Get()), nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	_, users, err := initEnv(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	if displayName == "" {
		displayName = args[0]
	}

	u, err := identity.NewUser(args[0], displayName, sysadmin)
	if err != nil {
		return err
	}
	if err := users.Create(cmd.Context(), u); err != nil {
		return err
	}

	logger.Info("user created", "id", u.ID(), "name", u.Name(), "sysadmin", u.IsSysadmin())
	fmt.Fprintln(cmd.OutOrStdout(), u.ID())
	return nil
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, users, err := initEnv(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	u, err := users.GetByName(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("user %q: %w", args[0], err)
	}

	token, err := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessTTL()).Generate(u.ID())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
	return nil
}
