package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ashview/ashview/internal/config"
	"github.com/ashview/ashview/internal/logging"
	"github.com/ashview/ashview/internal/model"
)

// resolveInputPath picks the report path for view commands: the positional
// argument when given, otherwise the configured default. The second return
// reports whether the path was defaulted.
func resolveInputPath(args []string) (string, bool, error) {
	if len(args) > 0 {
		return args[0], false, nil
	}
	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		return "", false, err
	}
	return cfg.DataPath, true, nil
}

// loadInput loads the report for view commands. An explicitly named file
// must be readable; a missing defaulted file falls back to the built-in
// sample dataset, matching the dashboard's own fallback behavior.
func loadInput(args []string) (*model.Report, error) {
	path, defaulted, err := resolveInputPath(args)
	if err != nil {
		return nil, err
	}

	if defaulted {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			logging.L().Debugf("%s not found, using sample data", path)
			return model.SampleReport(), nil
		}
	}
	return model.LoadReport(path)
}

// rawInput returns the raw report JSON for view commands that work on the
// unparsed payload. HTML inputs yield the embedded data block.
func rawInput(args []string) ([]byte, error) {
	path, defaulted, err := resolveInputPath(args)
	if err != nil {
		return nil, err
	}

	if defaulted {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			logging.L().Debugf("%s not found, using sample data", path)
			return model.SampleJSON(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		embedded, ok := model.ExtractEmbedded(data)
		if !ok {
			return nil, fmt.Errorf("%s has no embedded scan data", path)
		}
		return embedded, nil
	}
	return data, nil
}
