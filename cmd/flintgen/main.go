// Command flintgen records a synthetic trace of nested spans.
//
// Settings come from FLINT_ environment variables (see internal/config);
// the -o, -json and -spans flags override them.
//
//	FLINT_DEPTH=6 flintgen -json -o trace.json
package main

import (
	"flag"
	"os"

	"github.com/arloliu/flint/internal/config"
	"github.com/arloliu/flint/internal/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.NewDefault().Fatal("invalid configuration", zap.Error(err))
	}

	output := flag.String("o", cfg.Output, "trace output path")
	jsonMode := flag.Bool("json", cfg.JSON, "write Chrome Trace Event Format JSON")
	spans := flag.Int("spans", cfg.Spans, "root spans per producer")
	flag.Parse()

	cfg.Output = *output
	cfg.JSON = *jsonMode
	cfg.Spans = *spans

	logger := logging.NewOrNop(logging.Config{
		Level:       cfg.LogLevel,
		Development: cfg.LogDev,
	})
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		os.Exit(2)
	}

	stats, err := run(cfg, logger)
	if err != nil {
		logger.Error("trace recording failed", zap.String("output", cfg.Output), zap.Error(err))
		os.Exit(1)
	}

	logger.Info("trace recorded",
		zap.String("output", cfg.Output),
		zap.Stringer("mode", cfg.Mode()),
		zap.Object("stats", stats),
	)
}
