package misc

import (
	"log/slog"

	"github.com/joho/godotenv"
)

// LoadEnvSettings loads .env.local then .env, if present. Values already in
// the environment always win.
func LoadEnvSettings(logger *slog.Logger) {
	if err := godotenv.Load(".env.local"); err == nil {
		Debugf(logger, "loaded .env.local")
	}
	if err := godotenv.Load(); err == nil {
		Debugf(logger, "loaded .env")
	}
}

// LoadEnvFile loads an explicitly named env file, erroring if it's missing
// since the user asked for it by name.
func LoadEnvFile(logger *slog.Logger, envFile string) error {
	Infof(logger, "loading env file:%s", envFile)
	return godotenv.Load(envFile)
}
