package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: texgen [flags] <doc.yaml>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assemble a LaTeX document from YAML configuration and compile it to PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <path>         Document config YAML (alternative to the positional argument)")
	fmt.Fprintln(w, "  -a, --artifacts-dir <dir>   Directory holding content files (default: config directory)")
	fmt.Fprintln(w, "      --work-dir <dir>        Directory where latexmk runs and artifacts land")
	fmt.Fprintln(w, "      --latexmk <path>        latexmk binary (default: resolved through PATH)")
	fmt.Fprintln(w, "      --timeout <duration>    Generation timeout (default: 2m)")
	fmt.Fprintln(w, "      --keep-aux              Keep latexmk auxiliary files after a successful build")
	fmt.Fprintln(w, "  -q, --quiet                 Suppress the result line")
	fmt.Fprintln(w, "  -v, --verbose               Log progress to stderr")
	fmt.Fprintln(w, "      --version               Print version and exit")
}
