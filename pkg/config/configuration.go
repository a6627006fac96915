package config

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const DefaultOutputDir = "data/out"

func (c *AnalyzerConfiguration) Validate() error {
	if len(c.InputPaths) == 0 {
		return errors.New("no benchmark log configured in InputPaths")
	}
	for _, path := range c.InputPaths {
		if strings.TrimSpace(path) == "" {
			return errors.New("InputPaths contains an empty path")
		}
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	return nil
}

// OutputDirFor returns the directory receiving the results of one input log,
// named after the log without its extension.
func (c *AnalyzerConfiguration) OutputDirFor(inputPath string) string {
	base := filepath.Base(inputPath)
	return filepath.Join(c.OutputDir, strings.TrimSuffix(base, filepath.Ext(base)))
}
