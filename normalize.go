package texgen

import (
	"regexp"
	"strconv"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Markdown-style link [display](url)
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// Raw TeX macro with a brace-delimited argument, e.g. \ref{fig:one}
	macroPattern = regexp.MustCompile(`\\[a-zA-Z]+\{[^}]*\}`)

	// Inline formatting spans
	codeSpanPattern   = regexp.MustCompile("`(.+?)`")
	boldSpanPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicSpanPattern = regexp.MustCompile(`\*(.+?)\*`)
)

// texEscaper replaces reserved LaTeX characters in a single pass.
// The replacement backslashes are not themselves in the reserved set,
// so no output of one replacement is re-escaped by another.
var texEscaper = strings.NewReplacer(
	"#", `\#`,
	"$", `\$`,
	"_", `\_`,
	"&", `\&`,
	"%", `\%`,
)

// capturedLink holds one extracted [display](url) span.
type capturedLink struct {
	display string
	url     string
}

// Normalize converts a restricted inline-markup string into LaTeX-safe
// text.
//
// Stages run in a fixed order: links and raw macros are captured first
// and replaced by NUL-delimited sentinel tokens so escaping cannot
// corrupt URLs or macro bodies, reserved characters are escaped, inline
// formatting is applied (bold before italic so ** pairs are not read as
// empty italics), and the captured spans are restored last. Macros are
// restored verbatim; link display text is escaped and formatted but not
// re-scanned for nested links or macros. Malformed link or macro syntax
// is left unmatched and falls through to plain escaping.
//
// Normalize is not idempotent: feeding escaped output back in escapes
// the introduced backslash sequences a second time. Call it exactly
// once per raw string.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	var links []capturedLink
	text := linkPattern.ReplaceAllStringFunc(raw, func(m string) string {
		parts := linkPattern.FindStringSubmatch(m)
		links = append(links, capturedLink{display: parts[1], url: parts[2]})
		return linkSentinel(len(links) - 1)
	})

	var macros []string
	text = macroPattern.ReplaceAllStringFunc(text, func(m string) string {
		macros = append(macros, m)
		return macroSentinel(len(macros) - 1)
	})

	text = applyFormatting(texEscaper.Replace(text))

	for i, m := range macros {
		text = strings.Replace(text, macroSentinel(i), m, 1)
	}
	for i, l := range links {
		display := applyFormatting(texEscaper.Replace(l.display))
		href := `\href{` + l.url + `}{` + display + `}`
		text = strings.Replace(text, linkSentinel(i), href, 1)
	}

	return text
}

// applyFormatting rewrites inline spans: `code` to \texttt, **bold** to
// \textbf, *italic* to \textit.
func applyFormatting(s string) string {
	s = codeSpanPattern.ReplaceAllString(s, `\texttt{$1}`)
	s = boldSpanPattern.ReplaceAllString(s, `\textbf{$1}`)
	return italicSpanPattern.ReplaceAllString(s, `\textit{$1}`)
}

// Sentinel tokens marking captured spans. The NUL byte cannot appear in
// YAML scalars, so tokens never collide with document text.

func linkSentinel(i int) string {
	return "\x00LINK" + strconv.Itoa(i) + "\x00"
}

func macroSentinel(i int) string {
	return "\x00CMD" + strconv.Itoa(i) + "\x00"
}
