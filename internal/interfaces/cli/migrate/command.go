package migrate

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply the database schema, seed reference data, and create the initial administrator account.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newSeedCommand(),
		newCreateAdminCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(log logger.Interface) error {
				return migration.Run(database.Get(), log)
			})
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed roles, statuses and priorities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(log logger.Interface) error {
				return migration.Seed(database.Get(), log)
			})
		},
	}
}

func newCreateAdminCommand() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the initial administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(log logger.Interface) error {
				return createAdmin(cmd.Context(), log, username)
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "admin", "Username for the administrator account")

	return cmd
}

// withDatabase loads configuration, opens the connection and runs fn.
func withDatabase(fn func(log logger.Interface) error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	return fn(logger.NewLogger())
}

func createAdmin(ctx context.Context, log logger.Interface, username string) error {
	password, err := promptPassword()
	if err != nil {
		return err
	}
	if len(password) < constants.MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", constants.MinPasswordLength)
	}

	userRepo := repository.NewUserRepository(database.Get(), log)
	roleRepo := repository.NewRoleRepository(database.Get(), log)

	adminRole, err := roleRepo.GetByName(ctx, "admin")
	if err != nil {
		return err
	}
	if adminRole == nil {
		return fmt.Errorf("admin role not found, run 'migrate seed' first")
	}

	exists, err := userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("user %q already exists", username)
	}

	hasher := auth.NewBcryptPasswordHasher(config.Get().Auth.BcryptCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	account, err := user.NewUser(username, hash, adminRole.ID())
	if err != nil {
		return err
	}

	if err := userRepo.Create(ctx, account); err != nil {
		return err
	}

	log.Infow("administrator account created", "username", username)
	return nil
}

// promptPassword reads the password from the terminal without echo,
// falling back to plain stdin when not attached to a TTY.
func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}
