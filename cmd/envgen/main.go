// Command envgen expands a YAML manifest of environment-variable field
// specifications into a Go source file containing the configuration struct
// and its construction routine. It is meant to run under go:generate:
//
//	//go:generate envgen -manifest env.yaml -out zz_config.go
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/gobeaver/envkit/gen"
)

func main() {
	var (
		manifestPath = flag.String("manifest", "env.yaml", "path to the field manifest")
		outPath      = flag.String("out", "", "output file (default: stdout)")
		check        = flag.Bool("check", false, "validate the manifest without generating")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	data, err := os.ReadFile(*manifestPath)
	if err != nil {
		logger.Fatal("failed to read manifest",
			zap.String("manifest", *manifestPath),
			zap.Error(err),
		)
	}

	m, err := gen.ParseManifest(data)
	if err != nil {
		logger.Fatal("invalid manifest",
			zap.String("manifest", *manifestPath),
			zap.Error(err),
		)
	}
	if *check {
		logger.Info("manifest is valid",
			zap.String("manifest", *manifestPath),
			zap.String("type", m.Type),
			zap.Int("fields", len(m.Fields)),
		)
		return
	}

	src, err := gen.Generate(m)
	if err != nil {
		logger.Fatal("generation failed",
			zap.String("manifest", *manifestPath),
			zap.Error(err),
		)
	}

	if *outPath == "" {
		if _, err := os.Stdout.Write(src); err != nil {
			logger.Fatal("failed to write output", zap.Error(err))
		}
		return
	}
	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		logger.Fatal("failed to write output",
			zap.String("out", *outPath),
			zap.Error(err),
		)
	}
	logger.Info("configuration generated",
		zap.String("manifest", *manifestPath),
		zap.String("out", *outPath),
		zap.String("type", m.Type),
		zap.Int("fields", len(m.Fields)),
	)
}
