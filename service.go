package texgen

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// defaultTimeout bounds one full generation run, TeX compilation
// included.
const defaultTimeout = 2 * time.Minute

// Compile-time interface implementation check.
var _ Renderer = (*latexmkRenderer)(nil)

// Service orchestrates the load, assemble and render pipeline.
type Service struct {
	cfg      serviceConfig
	renderer Renderer
}

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout      time.Duration
	latexmk      string
	workDir      string
	artifactsDir string
	keepAux      bool
	now          func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout sets the generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("texgen: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithLatexmkPath overrides the latexmk binary resolved through PATH.
func WithLatexmkPath(path string) Option {
	return func(s *Service) {
		s.cfg.latexmk = path
	}
}

// WithWorkDir sets the directory where latexmk runs and the .tex and
// .pdf artifacts are written. Defaults to the current directory.
func WithWorkDir(dir string) Option {
	return func(s *Service) {
		s.cfg.workDir = dir
	}
}

// WithArtifactsDir overrides where content files are resolved.
// Defaults to the directory of the document config.
func WithArtifactsDir(dir string) Option {
	return func(s *Service) {
		s.cfg.artifactsDir = dir
	}
}

// WithRenderer injects a custom renderer in place of the latexmk one.
// Useful for dry runs and for tests that only need the assembled source.
func WithRenderer(r Renderer) Option {
	return func(s *Service) {
		s.renderer = r
	}
}

// WithKeepAux keeps the latexmk auxiliary files after a successful
// build instead of cleaning them up.
func WithKeepAux(keep bool) Option {
	return func(s *Service) {
		s.cfg.keepAux = keep
	}
}

// WithNow overrides the clock used to resolve "auto" revision dates.
// Defaults to time.Now.
func WithNow(now func() time.Time) Option {
	if now == nil {
		panic("texgen: WithNow clock must not be nil")
	}
	return func(s *Service) {
		s.cfg.now = now
	}
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			latexmk: defaultLatexmkBinary,
			now:     time.Now,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.renderer == nil {
		s.renderer = newLatexmkRenderer(s.cfg.latexmk, s.cfg.workDir, s.cfg.keepAux)
	}

	return s
}

// Generate loads the document config at configPath, assembles the LaTeX
// source, and compiles the final PDF. It returns the path of the
// produced artifact.
func (s *Service) Generate(ctx context.Context, configPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	cfg, err := loadDocumentConfig(configPath, s.cfg.now())
	if err != nil {
		return "", err
	}

	artifactsDir := s.cfg.artifactsDir
	if artifactsDir == "" {
		artifactsDir = filepath.Dir(configPath)
	}

	source, err := cfg.Assemble(NewLoader(artifactsDir))
	if err != nil {
		return "", fmt.Errorf("assembling document: %w", err)
	}

	if err := s.renderer.Render(ctx, source, cfg.OutputFile); err != nil {
		return "", err
	}

	return filepath.Join(s.cfg.workDir, cfg.OutputFile+".pdf"), nil
}
