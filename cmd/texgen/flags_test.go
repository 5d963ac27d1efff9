package main

import (
	"bytes"
	"testing"
	"time"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, f *cliFlags, rest []string)
		wantErr bool
	}{
		{
			name: "defaults",
			args: nil,
			check: func(t *testing.T, f *cliFlags, rest []string) {
				if f.latexmk != "latexmk" {
					t.Errorf("latexmk = %q, want %q", f.latexmk, "latexmk")
				}
				if f.timeout != 2*time.Minute {
					t.Errorf("timeout = %v, want 2m", f.timeout)
				}
				if f.keepAux || f.quiet || f.verbose || f.version {
					t.Errorf("boolean flags should default to false: %+v", f)
				}
			},
		},
		{
			name: "positional argument preserved",
			args: []string{"doc.yaml"},
			check: func(t *testing.T, f *cliFlags, rest []string) {
				if len(rest) != 1 || rest[0] != "doc.yaml" {
					t.Errorf("rest = %v, want [doc.yaml]", rest)
				}
			},
		},
		{
			name: "all flags set",
			args: []string{
				"-c", "doc.yaml", "-a", "artifacts", "--work-dir", "build",
				"--latexmk", "/opt/tex/latexmk", "--timeout", "5m",
				"--keep-aux", "-q", "-v",
			},
			check: func(t *testing.T, f *cliFlags, rest []string) {
				if f.config != "doc.yaml" || f.artifactsDir != "artifacts" || f.workDir != "build" {
					t.Errorf("path flags not parsed: %+v", f)
				}
				if f.latexmk != "/opt/tex/latexmk" {
					t.Errorf("latexmk = %q", f.latexmk)
				}
				if f.timeout != 5*time.Minute {
					t.Errorf("timeout = %v, want 5m", f.timeout)
				}
				if !f.keepAux || !f.quiet || !f.verbose {
					t.Errorf("boolean flags not parsed: %+v", f)
				}
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var errw bytes.Buffer
			f, rest, err := parseFlags(tt.args, &errw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFlags() accepted invalid args")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			tt.check(t, f, rest)
		})
	}
}
