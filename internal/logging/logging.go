// Package logging builds the zap logger used by commands.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/keshon/fileops/internal/config"
)

// New builds a logger from cfg. Output "none" (or empty) disables logging,
// which keeps the interactive console free of log lines.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	output := strings.ToLower(strings.TrimSpace(cfg.Output))
	if output == "" || output == "none" {
		return zap.NewNop(), nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.Output}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}
