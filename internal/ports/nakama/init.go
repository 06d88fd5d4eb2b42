package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"

	"remi/internal/app"
	"remi/internal/config"
)

// InitModule wires the hand analysis RPCs for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	cfg := loadConfig(ctx, logger)
	if err := RegisterRPCs(initializer, app.NewService(nil, cfg)); err != nil {
		return err
	}

	logger.Info("Remi Go module loaded (jokers wild: %v, deal size: %d).", cfg.JokersWild, cfg.DealSize)
	return nil
}

// loadConfig reads the JSON file named by the remi_config env entry, falling
// back to the defaults when it is unset or unreadable.
func loadConfig(ctx context.Context, logger runtime.Logger) config.AnalysisConfig {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	path := env[EnvConfigPath]
	if path == "" {
		return config.Default()
	}
	if err := config.LoadAnalysisConfig(path); err != nil {
		logger.Warn("InitModule: Could not load analysis config %s: %v", path, err)
		return config.Default()
	}
	return config.GetAnalysisConfig()
}
