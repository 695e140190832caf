package logger

import (
	"os"

	"go.uber.org/zap"
)

// Init builds the process logger and installs it as the zap global so
// package-level helpers can log without threading a logger everywhere.
func Init() (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if os.Getenv("APP_ENV") == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)
	return log, nil
}
