package main

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNoConfig signals that no document config was given.
var ErrNoConfig = errors.New("no document config given (pass a path or use --config)")

// generator is the interface for the generation service.
type generator interface {
	Generate(ctx context.Context, configPath string) (string, error)
}

// run resolves the config path and delegates to the generation service.
func run(ctx context.Context, flags *cliFlags, args []string, g generator, stdout, stderr io.Writer) error {
	configPath := flags.config
	if configPath == "" {
		if len(args) == 0 {
			return ErrNoConfig
		}
		configPath = args[0]
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "Rendering %s\n", configPath)
	}

	pdfPath, err := g.Generate(ctx, configPath)
	if err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Created %s\n", pdfPath)
	}
	return nil
}
