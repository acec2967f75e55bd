package main

import (
	"fmt"
	"os"

	"restkit/internal/cli"
	"restkit/internal/config"
	"restkit/internal/logger"

	"go.uber.org/zap"
)

func main() {
	conf, err := config.MustLoad()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %s\n", err)
		os.Exit(1)
	}

	log, err := logger.New(conf.LogLevel(), conf.LogFormat())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %s\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	for _, field := range conf.Retired() {
		if err = field.Check(); err != nil {
			log.Fatal("retired setting in use", zap.Error(err))
		}
	}

	app := cli.New(conf, os.Stdin, os.Stdout)
	if err = app.Run(os.Args[1:]); err != nil {
		log.Error("command failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
