package config

import (
    "fmt"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger from LogLevel and LogFormat.
func (c *Config) NewLogger() (*zap.SugaredLogger, error) {
    level, err := zapcore.ParseLevel(c.LogLevel)
    if err != nil {
        return nil, fmt.Errorf("log-level: %w", err)
    }
    zc := zap.NewProductionConfig()
    if c.LogFormat == "console" {
        zc = zap.NewDevelopmentConfig()
    }
    zc.Level = zap.NewAtomicLevelAt(level)
    logger, err := zc.Build()
    if err != nil {
        return nil, fmt.Errorf("build logger: %w", err)
    }
    return logger.Sugar(), nil
}
