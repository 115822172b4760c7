package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/statcalc/statcalc/cmd/config"
	"github.com/statcalc/statcalc/cmd/util"
	"github.com/statcalc/statcalc/internal/app/subsystems/store"
	"github.com/statcalc/statcalc/internal/app/subsystems/store/migrations"
	"github.com/statcalc/statcalc/internal/app/subsystems/store/postgres"
	"github.com/statcalc/statcalc/internal/app/subsystems/store/sqlite"
)

func NewCmd(cfg *config.Config, vip *viper.Viper) *cobra.Command {
	// only the store config applies to migrations
	var sub struct {
		Store config.Store `flag:"store"`
	}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
		Long:  "Manage the sqlite and postgres schema migrations",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := util.ReadConfig(cmd, vip); err != nil {
				return err
			}

			if err := config.Parse(&sub, vip); err != nil {
				return err
			}

			cfg.Store = sub.Store
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// bind config file flag
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default statcalc.yaml)")

	// bind store config
	config.Bind(&sub, cmd.PersistentFlags(), vip)

	// Add subcommands
	cmd.AddCommand(newStatusCmd(cfg))
	cmd.AddCommand(newDryRunCmd(cfg))
	cmd.AddCommand(newUpCmd(cfg))

	return cmd
}

func newStatusCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show current migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeDB, err := open(&cfg.Store)
			if err != nil {
				return err
			}
			defer closeDB()

			current, err := migrations.CurrentVersion(s)
			if err != nil {
				return fmt.Errorf("failed to get current version: %w", err)
			}

			all, err := migrations.LoadMigrations(s)
			if err != nil {
				return fmt.Errorf("failed to load migrations: %w", err)
			}

			latest := current
			if len(all) > 0 {
				latest = all[len(all)-1].Version
			}

			pending := migrations.Pending(all, current)

			cmd.Printf("Store type: %s\n", s)
			cmd.Printf("Current migration version: %d\n", current)
			cmd.Printf("Latest migration version: %d\n", latest)
			cmd.Printf("Pending migrations: %d\n", len(pending))

			if len(pending) > 0 {
				cmd.Println("\nStatus: MIGRATIONS PENDING")
			} else {
				cmd.Println("\nStatus: UP TO DATE")
			}

			return nil
		},
	}
}

func newDryRunCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "dry-run",
		Short: "Show which migrations would be applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeDB, err := open(&cfg.Store)
			if err != nil {
				return err
			}
			defer closeDB()

			current, err := migrations.CurrentVersion(s)
			if err != nil {
				return fmt.Errorf("failed to get current version: %w", err)
			}

			pending, err := migrations.GetPendingMigrations(current, s)
			if err != nil {
				return fmt.Errorf("failed to get pending migrations: %w", err)
			}

			if len(pending) == 0 {
				cmd.Println("No pending migrations")
				return nil
			}

			cmd.Printf("Would apply the following %d migration(s):\n\n", len(pending))
			for _, m := range pending {
				cmd.Printf("  %s\n", m)
			}

			return nil
		},
	}
}

func newUpCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeDB, err := open(&cfg.Store)
			if err != nil {
				return err
			}
			defer closeDB()

			current, err := migrations.CurrentVersion(s)
			if err != nil {
				return fmt.Errorf("failed to get current version: %w", err)
			}

			pending, err := migrations.GetPendingMigrations(current, s)
			if err != nil {
				return fmt.Errorf("failed to get pending migrations: %w", err)
			}

			if len(pending) == 0 {
				cmd.Println("No pending migrations")
				return nil
			}

			if err := migrations.ValidateMigrationSequence(pending, current); err != nil {
				return err
			}

			cmd.Printf("Applying %d migration(s)...\n\n", len(pending))

			if err := migrations.ApplyMigrations(pending, s, cmd.OutOrStdout()); err != nil {
				return err
			}

			cmd.Printf("\nSuccessfully applied %d migration(s). Database is now at version %d.\n", len(pending), pending[len(pending)-1].Version)
			return nil
		},
	}
}

// open returns the migration store for the configured store kind along
// with a func that closes the underlying database.
func open(cfg *config.Store) (migrations.MigrationStore, func() error, error) {
	switch cfg.Kind {
	case store.Sqlite:
		s, err := sqlite.New(&cfg.Sqlite)
		if err != nil {
			return nil, nil, err
		}
		return migrations.NewSqliteMigrationStore(s.DB()), s.DB().Close, nil
	case store.Postgres:
		s, err := postgres.New(&cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		return migrations.NewPostgresMigrationStore(s.DB()), s.DB().Close, nil
	default:
		return nil, nil, fmt.Errorf("store kind %q has no migrations, use sqlite or postgres", cfg.Kind)
	}
}
