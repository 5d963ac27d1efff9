package texgen

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain prose unchanged",
			input:    "nothing special here",
			expected: "nothing special here",
		},
		{
			name:     "percent escaped",
			input:    "50% done",
			expected: `50\% done`,
		},
		{
			name:     "all reserved characters escaped",
			input:    "# $ _ & %",
			expected: `\# \$ \_ \& \%`,
		},
		{
			name:     "bold italic and code spans",
			input:    "**bold** and *italic* and `code`",
			expected: `\textbf{bold} and \textit{italic} and \texttt{code}`,
		},
		{
			name:     "bold matched before italic",
			input:    "**x**",
			expected: `\textbf{x}`,
		},
		{
			name:     "code span with underscore escaped inside",
			input:    "`snake_case`",
			expected: `\texttt{snake\_case}`,
		},
		{
			name:     "link target kept unescaped",
			input:    "[Docs](https://example.com/a_b)",
			expected: `\href{https://example.com/a_b}{Docs}`,
		},
		{
			name:     "link display normalized independently",
			input:    "[**50%**](https://example.com)",
			expected: `\href{https://example.com}{\textbf{50\%}}`,
		},
		{
			name:     "two links restored in order",
			input:    "[a](u1) then [b](u2)",
			expected: `\href{u1}{a} then \href{u2}{b}`,
		},
		{
			name:     "raw macro passthrough",
			input:    `\ref{fig:one}`,
			expected: `\ref{fig:one}`,
		},
		{
			name:     "macro argument never escaped",
			input:    `see \label{sec:a_b} here`,
			expected: `see \label{sec:a_b} here`,
		},
		{
			name:     "macro next to escaped text",
			input:    `100% of \ref{tab:x}`,
			expected: `100\% of \ref{tab:x}`,
		},
		{
			name:     "malformed link falls through to escaping",
			input:    "[Docs](no_close",
			expected: `[Docs](no\_close`,
		},
		{
			name:     "malformed macro falls through to escaping",
			input:    `\ref{unclosed_arg`,
			expected: `\ref{unclosed\_arg`,
		},
		{
			name:     "link inside prose with reserved characters",
			input:    "cost & link [x](http://e.com/q?a=1&b=2)",
			expected: `cost \& link \href{http://e.com/q?a=1&b=2}{x}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Normalizing already-escaped output escapes the backslash sequences a
// second time. The property is documented, not relied upon.
func TestNormalizeNotIdempotent(t *testing.T) {
	t.Parallel()

	once := Normalize("50% done")
	twice := Normalize(once)

	if once != `50\% done` {
		t.Fatalf("Normalize() = %q, want %q", once, `50\% done`)
	}
	if twice == once {
		t.Errorf("double normalization unexpectedly idempotent: %q", twice)
	}
	if twice != `50\\% done` {
		t.Errorf("Normalize(Normalize()) = %q, want %q", twice, `50\\% done`)
	}
}

func TestNormalizePlainProseStable(t *testing.T) {
	t.Parallel()

	// Prose without reserved characters or markup is a fixed point.
	input := "ordinary sentence with no markup at all"
	if got := Normalize(Normalize(input)); got != input {
		t.Errorf("Normalize twice = %q, want %q", got, input)
	}
}

func TestNormalizeLeavesNoSentinels(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"[a](b) and \\ref{x} and `c` and **d**",
		"[only](link)",
		"\\cmd{only}",
	}
	for _, input := range inputs {
		if got := Normalize(input); strings.ContainsRune(got, '\x00') {
			t.Errorf("Normalize(%q) leaked sentinel bytes: %q", input, got)
		}
	}
}
