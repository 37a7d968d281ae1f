package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

var (
	// Log is the global logger instance
	Log zerolog.Logger
)

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	Log = build(consoleWriter(os.Stdout), zerolog.InfoLevel)
}

// Setup configures the global logger for the given server mode. Debug mode
// writes colored console output; every other mode writes JSON lines.
// levelStr overrides the mode's default level when set.
func Setup(mode, levelStr string) {
	var out io.Writer = os.Stdout
	defaultLevel := zerolog.InfoLevel
	if mode == "debug" {
		out = consoleWriter(os.Stdout)
		defaultLevel = zerolog.DebugLevel
	}

	level := defaultLevel
	if levelStr != "" {
		parsed, err := zerolog.ParseLevel(levelStr)
		if err != nil {
			Log.Warn().Str("level", levelStr).Msg("invalid log level, using mode default")
		} else {
			level = parsed
		}
	}

	zerolog.SetGlobalLevel(level)
	Log = build(out, level)
	log.Logger = Log
}

func build(out io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}
}
