package main

import (
	"flag"
	"os"
	"time"

	"github.com/eth-easl/brachistochrone/pkg/analysis"
	"github.com/eth-easl/brachistochrone/pkg/config"
	"github.com/eth-easl/brachistochrone/pkg/metric"
	"github.com/eth-easl/brachistochrone/pkg/trace"
	"github.com/google/uuid"

	log "github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "cmd/config.json", "Path to analyzer configuration file")
	verbosity  = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
	outputDir  = flag.String("o", "", "Overwrite the output directory of the configuration")
)

func init() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch *verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	cfg, err := config.ReadConfigurationFile(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	runID := uuid.New().String()
	for _, inputPath := range cfg.InputPaths {
		logger := log.WithFields(log.Fields{"run": runID, "input": inputPath})

		if err := analyzeLog(&cfg, inputPath, logger); err != nil {
			logger.Fatal(err)
		}
	}
}

func analyzeLog(cfg *config.AnalyzerConfiguration, inputPath string, logger *log.Entry) error {
	dataset, stats, err := trace.ParseBenchmarkFile(inputPath)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %d benchmark runs (%d malformed rows dropped)", stats.Valid, stats.Dropped)

	result, err := analysis.Analyze(dataset)
	if err != nil {
		return err
	}

	for _, s := range result.Optima() {
		logger.Infof("Matrix size %d: optimal granularity %d (%.3f s)", s.MatrixSize, s.Optimum.Granularity, s.Optimum.Time)
	}
	if len(result.SkippedSizes) > 0 {
		logger.Infof("Too few granularities for minimum detection: %v", result.SkippedSizes)
	}

	if cfg.PrintSummary {
		metric.PrintSummary(os.Stdout, result)
	}

	if cfg.ExportCSV {
		exporter := metric.NewExporter(cfg.OutputDirFor(inputPath))
		if err := exporter.Export(result); err != nil {
			return err
		}
	}

	return nil
}
