// Package logging configures the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
)

// logger defaults to a nop so packages can log before Init runs
// (and so tests never need logger setup).
var logger = zap.NewNop().Sugar()

// Init builds the real logger. Debug mode uses the development config at
// debug level; otherwise a console-encoded production config that only
// surfaces warnings. Output goes to stderr so formatter output on stdout
// stays machine-readable.
func Init(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l.Sugar()
	return nil
}

// L returns the current sugared logger.
func L() *zap.SugaredLogger {
	return logger
}
