package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"hotel/config"
	"hotel/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	migrationSource       = "file://migrations/postgres"
	migrationTableParam   = "x-migrations-table"
	defaultMigrationTable = "schema_migrations"
)

func connectionString(config *config.Config) (string, error) {
	dsn, err := url.Parse(postgres.DSN(*config))
	if err != nil {
		return "", fmt.Errorf("error parsing document store dsn: %w", err)
	}

	table := config.DocStore.Postgres.MigrationTable
	if table == "" {
		table = defaultMigrationTable
	}

	query := dsn.Query()
	query.Set(migrationTableParam, table)
	dsn.RawQuery = query.Encode()

	return dsn.String(), nil
}

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	if driver := cfg.DocStore.Driver; driver != config.DocStoreDriverPostgres && driver != "" {
		return nil, fmt.Errorf("migrations only apply to the postgres document store, driver is %q", driver)
	}

	connection, err := connectionString(cfg)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.New(migrationSource, connection)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch action {
	case "up":
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Document store migrations completed successfully")

		return nil
	case "down":
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Document store migrations rolled back successfully")

		return nil
	case "step-up":
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Document store migrations completed successfully")

		return nil
	case "drop":
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Document store migrations rolled back successfully")

		return nil
	}

	return fmt.Errorf("unknown migration action %q", action)
}

func Up(config *config.Config) error {
	return Runner(config, "up")
}

func StepUp(config *config.Config) error {
	return Runner(config, "step-up")
}

func Down(config *config.Config) error {
	return Runner(config, "down")
}

func Drop(config *config.Config) error {
	return Runner(config, "drop")
}
