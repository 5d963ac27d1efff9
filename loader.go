package texgen

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-texgen/internal/yamlutil"
)

// Loader resolves content files from a single artifacts directory. The
// directory is an explicit value, not ambient state, so rendering stays
// testable against temporary trees.
type Loader struct {
	Dir string
}

// NewLoader returns a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// LoadDocumentConfig reads and validates the top-level document config.
// Unknown keys are rejected so typos fail fast instead of silently
// dropping settings. Revision dates written as "auto" resolve against
// the wall clock.
func LoadDocumentConfig(path string) (*DocumentConfig, error) {
	return loadDocumentConfig(path, time.Now())
}

// loadDocumentConfig resolves auto dates against now before validating,
// so a resolved date is held to the same ISO invariant as a literal one.
func loadDocumentConfig(path string, now time.Time) (*DocumentConfig, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg DocumentConfig
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.ResolveDates(now); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadContent reads one content file by name, relative to the artifacts
// directory. A missing file surfaces as the underlying os error so the
// whole render aborts.
func (l *Loader) LoadContent(name string) (*ContentFile, error) {
	path := filepath.Join(l.Dir, name)
	data, err := os.ReadFile(path) // #nosec G304 -- names come from trusted config
	if err != nil {
		return nil, fmt.Errorf("reading content file %s: %w", name, err)
	}

	var cf ContentFile
	if err := yamlutil.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrContentParse, name, err)
	}
	return &cf, nil
}
