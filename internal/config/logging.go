package config

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// InitLogger configures the package-level logrus logger. Development gets
// colored text output, every other environment gets JSON.
func InitLogger(cfg *Config) error {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Log.Level, err)
	}
	log.SetLevel(level)

	if cfg.IsDevelopment() {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&log.JSONFormatter{})
	}

	return nil
}
