package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	DocStoreDriverPostgres  = "postgres"
	DocStoreDriverFirestore = "firestore"
	DocStoreDriverMemory    = "memory"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
			FallbackBurst int  `envconfig:"FALLBACK_BURST"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	DocStore struct {
		Driver   string `envconfig:"DRIVER" default:"postgres"`
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
		Firestore struct {
			ProjectID       string `envconfig:"PROJECT_ID"`
			CredentialsFile string `envconfig:"CREDENTIALS_FILE"`
			EmulatorHost    string `envconfig:"EMULATOR_HOST"`
		} `envconfig:"FIRESTORE"`
	} `envconfig:"DOCSTORE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			Region          string `envconfig:"REGION"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			ReportDirectory string `envconfig:"REPORT_DIRECTORY"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		if invalid := conf.Validate(); invalid != nil {
			log.Fatal().Err(invalid).Msg("Invalid service configuration")
		}

		initialized = true

		log.Info().Str("docstore", conf.DocStore.Driver).Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	var errs []error

	switch c.DocStore.Driver {
	case DocStoreDriverPostgres, DocStoreDriverMemory, "":
	case DocStoreDriverFirestore:
		if c.DocStore.Firestore.ProjectID == "" {
			errs = append(errs, errors.New("DOCSTORE_FIRESTORE_PROJECT_ID is required for the firestore driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DOCSTORE_DRIVER %q", c.DocStore.Driver))
	}

	if limiter := c.App.RateLimiter; limiter.Enable && (limiter.MaxRequests <= 0 || limiter.WindowSeconds <= 0) {
		errs = append(errs, errors.New("APP_RATE_LIMITER_MAX_REQUESTS and APP_RATE_LIMITER_WINDOW_SECONDS must be positive"))
	}

	if c.Cache.TTL < 0 {
		errs = append(errs, errors.New("CACHE_TTL must not be negative"))
	}

	return errors.Join(errs...)
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized from environment only")
		}
	}

	return &conf
}
