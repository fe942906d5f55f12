// Package logging provides centralized structured logging for sdkgeist.
// It wraps zap.Logger and allows runtime-configurable level, output streams, and file logging.
package logging

import (
	"os"

	"github.com/mfulz/sdkgeist/internal/configloader"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config represents the logging section of sdkgeist.yaml.
type Config struct {
	Level      string `mapstructure:"level"`       // "debug", "info", "warn", "error"
	ToStdout   bool   `mapstructure:"to_stdout"`   // Enable output to stdout
	ToStderr   bool   `mapstructure:"to_stderr"`   // Enable output to stderr
	ToFile     bool   `mapstructure:"to_file"`     // Enable output to file
	FilePath   string `mapstructure:"file"`        // Log file path, e.g. ~/.sdkgeist/sdkgeist.log
	MaxSizeMB  int    `mapstructure:"max_size"`    // Max size before rotation (in MB)
	MaxAge     int    `mapstructure:"max_age"`     // Max age of logs (in days)
	MaxBackups int    `mapstructure:"max_backups"` // Number of rotated backups to keep
	Compress   bool   `mapstructure:"compress"`    // Gzip compress old log files
}

// DefaultConfig logs info and above to stderr; stdout is reserved for
// command output.
func DefaultConfig() Config {
	return Config{
		Level:    "info",
		ToStderr: true,
	}
}

// Log is the globally accessible sugared logger instance.
var Log *zap.SugaredLogger

// Init rebuilds the global logger from the registered *Config.
func Init() error {
	logger, err := New(configloader.MustGetConfig[*Config]())
	if err != nil {
		return err
	}
	Log = logger
	return nil
}

// New builds a sugared logger for cfg.
func New(cfg *Config) (*zap.SugaredLogger, error) {
	var cores []zapcore.Core

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			return nil, err
		}
	}

	if cfg.ToStdout {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level))
	}

	if cfg.ToStderr {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level))
	}

	if cfg.ToFile && cfg.FilePath != "" {
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(encoder, writer, level))
	}

	if len(cores) == 0 {
		// Fallback: always log somewhere
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar(), nil
}

func init() {
	cfg := DefaultConfig()
	configloader.RegisterConfig(&cfg)
	_ = Init()
}
