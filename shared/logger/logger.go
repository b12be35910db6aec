package logger

import (
	"os"
	"time"

	"hotel/config"
	"hotel/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

// UseEnvironmentOutput switches to plain JSON lines in production so log
// shippers can parse them; other environments keep the console writer.
func UseEnvironmentOutput(cfg *config.Config) {
	if cfg.Server.Env != constant.ServerEnvProduction {
		return
	}

	zerolog.TimeFieldFormat = time.RFC3339

	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("app", cfg.App.Name).
		Logger()
}

// Component returns a child of the global logger tagged with name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
