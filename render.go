package texgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/alnah/go-texgen/internal/fileutil"
)

// defaultLatexmkBinary is resolved through PATH unless overridden.
const defaultLatexmkBinary = "latexmk"

// Renderer produces the final artifact from assembled LaTeX source.
// The default implementation shells out to latexmk; inject another one
// with WithRenderer.
type Renderer interface {
	Render(ctx context.Context, texSource, outputFile string) error
}

// latexmkRenderer shells out to latexmk in a working directory.
type latexmkRenderer struct {
	binary  string
	dir     string
	keepAux bool
}

func newLatexmkRenderer(binary, dir string, keepAux bool) *latexmkRenderer {
	if binary == "" {
		binary = defaultLatexmkBinary
	}
	return &latexmkRenderer{binary: binary, dir: dir, keepAux: keepAux}
}

// Render writes outputFile.tex and compiles it to outputFile.pdf.
// The .tex source is kept after compilation; auxiliary files are
// cleaned up unless the renderer was built with keepAux.
func (r *latexmkRenderer) Render(ctx context.Context, texSource, outputFile string) error {
	texPath := filepath.Join(r.dir, outputFile+".tex")
	if err := fileutil.WriteFileAtomic(texPath, []byte(texSource), 0o644); err != nil {
		return fmt.Errorf("writing tex source: %w", err)
	}

	// A stale latexmk state file makes reruns fail with "gave an error
	// in previous invocation"; remove it before compiling.
	fdbPath := filepath.Join(r.dir, outputFile+".fdb_latexmk")
	if err := fileutil.RemoveIfExists(fdbPath); err != nil {
		return fmt.Errorf("removing stale build state: %w", err)
	}

	cmd := exec.CommandContext(ctx, r.binary,
		"-pdf", "-interaction=nonstopmode", "-halt-on-error", outputFile+".tex")
	cmd.Dir = r.dir

	// latexmk reports compile errors on stdout, not stderr, so capture
	// both streams into one buffer for the error message.
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrToolchainNotFound, r.binary)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %v", ErrRenderFailed, ctxErr)
		}
		msg := strings.TrimSpace(output.String())
		if msg == "" {
			return fmt.Errorf("%w: %v", ErrRenderFailed, err)
		}
		return fmt.Errorf("%w: %v: %s", ErrRenderFailed, err, msg)
	}

	if !r.keepAux {
		// Best effort: a failed cleanup leaves extra files behind but the
		// PDF is already in place.
		clean := exec.CommandContext(ctx, r.binary, "-c", outputFile+".tex")
		clean.Dir = r.dir
		_ = clean.Run()
	}
	return nil
}
