package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/sumgridgo/internal/app"
	"github.com/vk/sumgridgo/internal/cli"
	"github.com/vk/sumgridgo/internal/config"
	"github.com/vk/sumgridgo/internal/hcl"
	"github.com/vk/sumgridgo/internal/yamlcfg"
)

// main is the entrypoint for the sumgridgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors; recover turns that into a
	// regular error so main can report it and exit cleanly.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked | %v", r)
		}
	}()

	// One loader per supported configuration format, merged into a single
	// model by the multi loader.
	loader := config.NewMultiLoader(hcl.NewLoader(), yamlcfg.NewLoader())
	sumgridApp := app.NewApp(outW, appConfig, loader)

	ctx := context.Background()
	if appConfig.Watch {
		return sumgridApp.Watch(ctx, appConfig)
	}
	return sumgridApp.Run(ctx, appConfig)
}
