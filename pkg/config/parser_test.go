package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigParser(t *testing.T) {
	var pathToConfigFile = ""
	wd, _ := os.Getwd()

	if strings.HasSuffix(wd, "pkg/config") {
		pathToConfigFile = "../../"
	}
	pathToConfigFile += "cmd/config.json"

	config, err := ReadConfigurationFile(pathToConfigFile)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"data/matrix_performance.csv",
		"data/matrix_performance_fault_tolerance.csv",
	}, config.InputPaths)
	assert.Equal(t, "data/out", config.OutputDir)
	assert.True(t, config.ExportCSV)
	assert.True(t, config.PrintSummary)
}

func TestConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"InputPaths": ["perf.csv"]}`), 0o644))

	config, err := ReadConfigurationFile(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputDir, config.OutputDir)
	assert.False(t, config.ExportCSV)
	assert.Equal(t, filepath.Join(DefaultOutputDir, "perf"), config.OutputDirFor("logs/perf.csv"))
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		testName string
		content  string
	}{
		{testName: "no_inputs", content: `{"OutputDir": "out"}`},
		{testName: "empty_input", content: `{"InputPaths": [" "]}`},
		{testName: "malformed_json", content: `{"InputPaths": [`},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(test.content), 0o644))

			_, err := ReadConfigurationFile(path)
			assert.Error(t, err)
		})
	}

	_, err := ReadConfigurationFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
