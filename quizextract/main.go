package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hanpama/pptquiz"
	"github.com/hanpama/pptquiz/internal/config"
	"github.com/hanpama/pptquiz/internal/logger"
	"github.com/hanpama/pptquiz/internal/pipeline"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Get()
	defer logger.Sync()

	runner := pipeline.NewRunner(cfg, pptquiz.Provider{}, log, os.Stdout)
	if _, err := runner.Run(); err != nil {
		log.Error("quiz extraction failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
