// Command qrgen encodes a URL into the QR code image consumed by the
// document title block.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-texgen/internal/fileutil"
	"github.com/alnah/go-texgen/internal/qrcode"
)

// Defaults match the barcode path the title-block layout references.
const (
	defaultContent = "https://github.com/dennisseah/agent-identity"
	defaultOutput  = "docs/images/barcode.png"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("qrgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	content := fs.StringP("url", "u", defaultContent, "content to encode")
	output := fs.StringP("out", "o", defaultOutput, "output PNG path")
	size := fs.IntP("size", "s", qrcode.DefaultSize, "image edge length in pixels")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	png, err := qrcode.Generate(*content, *size)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := fileutil.WriteFileAtomic(*output, png, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Created %s\n", *output)
	return nil
}
