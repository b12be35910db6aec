package docstore

import (
	"errors"
	"fmt"

	"hotel/config"
	firestoreInfra "hotel/infras/firestore"
	"hotel/infras/otel"
	"hotel/infras/postgres"

	"github.com/rs/zerolog/log"
)

var ErrUnknownDriver = errors.New("unknown document store driver")

// Open connects the backend named by DOCSTORE_DRIVER.
func Open(cfg *config.Config, ot otel.Otel) (Store, error) {
	driver := cfg.DocStore.Driver

	log.Info().Str("driver", driver).Msg("Opening document store")

	switch driver {
	case config.DocStoreDriverPostgres, "":
		conn := postgres.New(cfg)
		if conn.Read == nil || conn.Write == nil {
			_ = conn.Close()

			return nil, fmt.Errorf("failed to connect to postgres document store")
		}

		return NewPostgres(conn, ot), nil
	case config.DocStoreDriverFirestore:
		return NewFirestore(firestoreInfra.New(cfg), ot), nil
	case config.DocStoreDriverMemory:
		log.Warn().Msg("Using the in-memory document store, data is lost on restart")

		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
