package main

import (
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line flags.
type cliFlags struct {
	config       string
	artifactsDir string
	workDir      string
	latexmk      string
	timeout      time.Duration
	keepAux      bool
	quiet        bool
	verbose      bool
	version      bool
}

// parseFlags parses args (without the program name) and returns the
// flags plus remaining positional arguments.
func parseFlags(args []string, errw io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("texgen", flag.ContinueOnError)
	fs.SetOutput(errw)
	fs.Usage = func() { printUsage(errw) }

	f := &cliFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "document config YAML (or pass as positional argument)")
	fs.StringVarP(&f.artifactsDir, "artifacts-dir", "a", "", "directory holding content files (default: config directory)")
	fs.StringVar(&f.workDir, "work-dir", "", "directory where latexmk runs and artifacts land")
	fs.StringVar(&f.latexmk, "latexmk", "latexmk", "latexmk binary")
	fs.DurationVar(&f.timeout, "timeout", 2*time.Minute, "generation timeout")
	fs.BoolVar(&f.keepAux, "keep-aux", false, "keep latexmk auxiliary files after a successful build")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress the result line")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
