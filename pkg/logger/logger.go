package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init is called so
// that packages can log from tests without extra setup.
var Log = logrus.New()

// Init configures the global logger from the environment.
// LOG_LEVEL selects the level (default "info"), LOG_FORMAT=json switches to
// the JSON formatter. Output goes to out, or stderr when out is nil.
func Init(out io.Writer) {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: out != nil,
		})
	}

	if out == nil {
		out = os.Stderr
	}
	Log.SetOutput(out)
}

// Component returns an entry tagged with the given component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}

// Silence discards all log output. Used by tests and by frontends that own
// the terminal when no log file was requested.
func Silence() {
	Log.SetOutput(io.Discard)
}
