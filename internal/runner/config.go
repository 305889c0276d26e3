package runner

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/textdist"
	fileutil "github.com/projectdiscovery/utils/file"
)

var defaultMetricCfg = filepath.Join(getUserHomeDir(), ".config", "textdist", "config.yaml")

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

// loadMetricConfig returns the metric config at path, the user default
// config when path is empty. The default config is created on first run.
func loadMetricConfig(path string) (*textdist.Config, error) {
	if path != "" {
		return textdist.NewConfig(path)
	}
	if fileutil.FileExists(defaultMetricCfg) {
		cfg, err := textdist.NewConfig(defaultMetricCfg)
		if err == nil {
			return cfg, nil
		}
		gologger.Warning().Msgf("ignoring invalid default config %v got: %v", defaultMetricCfg, err)
	} else {
		if err := os.MkdirAll(filepath.Dir(defaultMetricCfg), 0755); err != nil {
			gologger.Error().Msgf("failed to create config directory got: %v", err)
		} else if err := os.WriteFile(defaultMetricCfg, textdist.DefaultConfigBin, 0600); err != nil {
			gologger.Error().Msgf("failed to save default config to %v got: %v", defaultMetricCfg, err)
		}
	}
	cfg := textdist.DefaultConfig
	return &cfg, nil
}
