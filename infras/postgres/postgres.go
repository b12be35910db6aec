package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"hotel/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection holds the read and write pools backing the Postgres document store.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}
}

// Close releases both pools.
func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to close postgres connections: %v", errs)
	}

	return nil
}

func getDBName(config config.Config, baseName string) string {
	if config.DocStore.Postgres.Prefix != "" {
		return config.DocStore.Postgres.Prefix + baseName
	}

	return baseName
}

// DSN builds the connection URL for the write database. Migrations use it too.
func DSN(config config.Config) string {
	write := config.DocStore.Postgres.Write

	return descriptor(write.Username, write.Password, write.Host, write.Port, getDBName(config, write.Name), write.SSLMode)
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	write := config.DocStore.Postgres.Write

	return CreatePostgresConnection(
		"write",
		descriptor(write.Username, write.Password, write.Host, write.Port, getDBName(config, write.Name), write.SSLMode),
		config.DocStore.Postgres.MaxRetry,
		config.DocStore.Postgres.RetryWaitTime,
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	read := config.DocStore.Postgres.Read

	return CreatePostgresConnection(
		"read",
		descriptor(read.Username, read.Password, read.Host, read.Port, getDBName(config, read.Name), read.SSLMode),
		config.DocStore.Postgres.MaxRetry,
		config.DocStore.Postgres.RetryWaitTime,
	)
}

func descriptor(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresConnection connects with retries and returns nil when every
// attempt failed.
func CreatePostgresConnection(name, dsn string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
