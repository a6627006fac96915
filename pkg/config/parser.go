package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

type AnalyzerConfiguration struct {
	InputPaths []string `json:"InputPaths"`
	OutputDir  string   `json:"OutputDir"`

	ExportCSV    bool `json:"ExportCSV"`
	PrintSummary bool `json:"PrintSummary"`
}

func ReadConfigurationFile(path string) (AnalyzerConfiguration, error) {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		return AnalyzerConfiguration{}, errors.Wrap(err, "failed to read configuration file")
	}

	var config AnalyzerConfiguration
	err = json.Unmarshal(byteValue, &config)
	if err != nil {
		return AnalyzerConfiguration{}, errors.Wrapf(err, "failed to parse configuration file %s", path)
	}

	if err := config.Validate(); err != nil {
		return AnalyzerConfiguration{}, err
	}

	return config, nil
}
