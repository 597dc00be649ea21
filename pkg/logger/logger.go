package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger.
var Log = logrus.New()

// Init configures Log from the environment. Call it once from main (and from TestMain).
//
//	LOG_LEVEL  - logrus level name, "info" when unset or invalid
//	LOG_FORMAT - "json" for collectors, anything else for colored text
func Init() {
	Log = logrus.New()

	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// For returns an entry tagged with the component name.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
