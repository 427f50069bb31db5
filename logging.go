package scholarpage

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds a zap logger. format "console" gives human-readable
// development output; anything else gives production JSON.
func NewLogger(format, level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("scholarpage: log level: %w", err)
		}
		cfg.Level = lvl
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("scholarpage: build logger: %w", err)
	}
	return logger, nil
}
