package logging

import (
	"go.uber.org/zap"

	"github.com/abhisek/parlo/internal/config"
)

// New builds the application logger. Bubble Tea owns stdout and
// stderr while the app runs, so all output goes to the configured log
// file.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.OutputPaths = []string{cfg.LogPath}
	zcfg.ErrorOutputPaths = []string{cfg.LogPath}
	return zcfg.Build()
}
