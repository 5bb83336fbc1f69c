package config

import (
	"path/filepath"
	"sync"

	"fjacquet/event-budget/internal/fileutils"
	"fjacquet/event-budget/internal/logging"

	"github.com/joho/godotenv"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file in the current or
// parent directory, once per process. A missing file is not an error.
func LoadEnv(logger logging.Logger) {
	once.Do(func() {
		if logger == nil {
			logger = logging.NewDiscardLogger()
		}

		envFile := ".env"
		if !fileutils.FileExists(envFile) {
			envFile = filepath.Join("..", ".env")
			if !fileutils.FileExists(envFile) {
				logger.Debug("No .env file found, using environment variables")
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			logger.WithError(err).Warn("Error loading .env file")
			return
		}
		logger.Debug("Loaded environment variables", logging.F(logging.FieldFile, envFile))
	})
}
