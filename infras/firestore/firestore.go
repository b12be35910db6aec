package firestore

import (
	"context"
	"os"

	"hotel/config"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const emulatorHostEnv = "FIRESTORE_EMULATOR_HOST"

// New opens the Firestore client for the configured project. An emulator
// host takes precedence over credentials.
func New(config *config.Config) *firestore.Client {
	cfg := config.DocStore.Firestore

	var options []option.ClientOption

	if cfg.EmulatorHost != "" {
		if err := os.Setenv(emulatorHostEnv, cfg.EmulatorHost); err != nil {
			log.Fatal().Err(err).Msg("Failed to point Firestore at the emulator")
		}
	} else if cfg.CredentialsFile != "" {
		options = append(options, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(context.Background(), cfg.ProjectID, options...)
	if err != nil {
		log.Fatal().Err(err).Str("project", cfg.ProjectID).Msg("Failed to create Firestore client")
	}

	log.Info().
		Str("project", cfg.ProjectID).
		Bool("emulator", cfg.EmulatorHost != "").
		Msg("Connected to Firestore")

	return client
}
