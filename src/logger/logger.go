package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controls how InitLogger sets up the package-wide logger. Zero
// values fall back to the same defaults the process previously
// hardcoded, so Config{} behaves like the old env-only setup.
type Config struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Defaults to "info" on empty or unparseable input.
	Level string
	// Format selects "pretty" console output; anything else (including
	// empty) writes plain JSON lines to stdout.
	Format string
	// File, if set, is also written to alongside stdout. "", "none",
	// and "disabled" all mean console-only.
	File string
}

func configFromEnv() Config {
	return Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
		File:   os.Getenv("LOG_FILE"),
	}
}

var Logger zerolog.Logger
var logFile *os.File

// InitLogger configures the package-wide Logger from cfg.
func InitLogger(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	switch cfg.File {
	case "", "none", "disabled":
		logFile = nil
	default:
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.File).Msg("failed to open log file, using stdout only")
			logFile = nil
		} else {
			logFile = f
		}
	}

	var writers []io.Writer
	if cfg.Format == "pretty" {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	} else {
		writers = append(writers, os.Stdout)
	}
	if logFile != nil {
		writers = append(writers, logFile)
	}

	Logger = zerolog.New(io.MultiWriter(writers...)).Level(level).With().
		Str("service", "clob-engine").
		Timestamp().
		Logger()

	log.Logger = Logger

	event := Logger.Info().Str("log_level", level.String())
	if logFile != nil {
		event = event.Str("log_file", cfg.File)
	}
	event.Msg("logger initialized")
}

// InitLoggerFromEnv calls InitLogger with LOG_LEVEL/LOG_FORMAT/LOG_FILE
// read from the environment — the entry point clobctl and some tests
// use so those process-level knobs keep working.
func InitLoggerFromEnv() {
	InitLogger(configFromEnv())
}

func CloseLogger() {
	if logFile != nil {
		_ = logFile.Sync()
		_ = logFile.Close()
		logFile = nil
	}
}

func GetLogger() zerolog.Logger {
	return Logger
}

// BookLogger returns a sub-logger scoped to one symbol's order book, so
// log lines from the concurrently-running books a BookRegistry hands
// out can be told apart without threading a symbol string through
// every call site.
func BookLogger(symbol string) zerolog.Logger {
	return Logger.With().Str("symbol", symbol).Logger()
}
