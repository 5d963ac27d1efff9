package texgen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const validDocYAML = `title: Agent Identity
author:
  - Ada Lovelace|ada
affiliation: Example Labs
email_domain: example.com
output_file: doc
geometry_options:
  top: 2cm
  bottom: 2cm
  left: 2.5cm
  right: 2.5cm
preamble:
  - \usepackage{booktabs}
content:
  - intro.yaml
abstract: What this is about.
revision_history:
  - version: "1.0"
    date: "2024-01-01"
    description:
      - init
`

func writeTempYAML(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDocumentConfig(t *testing.T) {
	t.Parallel()

	path := writeTempYAML(t, "doc.yaml", validDocYAML)
	cfg, err := LoadDocumentConfig(path)
	if err != nil {
		t.Fatalf("LoadDocumentConfig() error = %v", err)
	}

	if cfg.Title != "Agent Identity" {
		t.Errorf("Title = %q, want %q", cfg.Title, "Agent Identity")
	}
	if cfg.Version() != "1.0" {
		t.Errorf("Version() = %q, want %q", cfg.Version(), "1.0")
	}
	if len(cfg.Content) != 1 || cfg.Content[0] != "intro.yaml" {
		t.Errorf("Content = %v, want [intro.yaml]", cfg.Content)
	}
}

func TestLoadDocumentConfigErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadDocumentConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		t.Parallel()

		path := writeTempYAML(t, "doc.yaml", validDocYAML+"typo_field: oops\n")
		_, err := LoadDocumentConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeTempYAML(t, "doc.yaml", "title: [unclosed\n")
		_, err := LoadDocumentConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		path := writeTempYAML(t, "doc.yaml", "title: Only a Title\n")
		_, err := LoadDocumentConfig(path)
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("error = %v, want ErrMissingField", err)
		}
	})
}

func TestLoadContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "title: Part One\ncontent:\n  - type: paragraph\n    text: hello\n"
	if err := os.WriteFile(filepath.Join(dir, "part.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cf, err := NewLoader(dir).LoadContent("part.yaml")
	if err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	if cf.Title != "Part One" {
		t.Errorf("Title = %q, want %q", cf.Title, "Part One")
	}
	if len(cf.Content) != 1 {
		t.Errorf("got %d nodes, want 1", len(cf.Content))
	}
}

func TestLoadContentErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file propagates os error", func(t *testing.T) {
		t.Parallel()

		_, err := NewLoader(t.TempDir()).LoadContent("absent.yaml")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("content: [oops\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := NewLoader(dir).LoadContent("bad.yaml")
		if !errors.Is(err, ErrContentParse) {
			t.Errorf("error = %v, want ErrContentParse", err)
		}
	})
}
