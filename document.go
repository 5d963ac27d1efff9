package texgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-texgen/internal/dateutil"
)

// DefaultVersion is shown on the title page when no revision exists.
const DefaultVersion = "0.1.0"

// BarcodePath is the scannable code image placed in the title block.
// cmd/qrgen writes the same path.
const BarcodePath = "docs/images/barcode.png"

// titleDateFormat renders revision dates on the title page.
const titleDateFormat = "MMMM DD, YYYY"

// GeometryOptions sets the page margins.
type GeometryOptions struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
}

// RevisionEntry is one row of the revision history.
type RevisionEntry struct {
	Version     string   `yaml:"version"`
	Date        string   `yaml:"date"`
	Description []string `yaml:"description"`
}

// DocumentConfig is the top-level document description loaded from YAML.
type DocumentConfig struct {
	Title           string          `yaml:"title"`
	Author          []string        `yaml:"author"`
	Affiliation     string          `yaml:"affiliation"`
	EmailDomain     string          `yaml:"email_domain"`
	OutputFile      string          `yaml:"output_file"`
	GeometryOptions GeometryOptions `yaml:"geometry_options"`
	Preamble        []string        `yaml:"preamble"`
	Content         []string        `yaml:"content"`
	Abstract        string          `yaml:"abstract"`
	RevisionHistory []RevisionEntry `yaml:"revision_history"`
}

// ResolveDates rewrites "auto" and "auto:FORMAT" revision dates against
// now. Runs before Validate; a resolved date still has to satisfy the
// ISO invariant, so "auto" with a non-ISO format fails validation like
// any other malformed date.
func (c *DocumentConfig) ResolveDates(now time.Time) error {
	for i, rev := range c.RevisionHistory {
		resolved, err := dateutil.ResolveDate(rev.Date, now)
		if err != nil {
			return fmt.Errorf("%w: entry %d: %v", ErrInvalidRevision, i, err)
		}
		c.RevisionHistory[i].Date = resolved
	}
	return nil
}

// Validate checks required fields and the revision-history invariant:
// entries carry version, an ISO date, and at least one description
// line, and dates are chronologically ordered.
func (c *DocumentConfig) Validate() error {
	required := []struct {
		name  string
		empty bool
	}{
		{"title", c.Title == ""},
		{"author", len(c.Author) == 0},
		{"affiliation", c.Affiliation == ""},
		{"output_file", c.OutputFile == ""},
		{"abstract", c.Abstract == ""},
		{"content", len(c.Content) == 0},
		{"geometry_options.top", c.GeometryOptions.Top == ""},
		{"geometry_options.bottom", c.GeometryOptions.Bottom == ""},
		{"geometry_options.left", c.GeometryOptions.Left == ""},
		{"geometry_options.right", c.GeometryOptions.Right == ""},
	}
	for _, f := range required {
		if f.empty {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	for i, rev := range c.RevisionHistory {
		if rev.Version == "" {
			return fmt.Errorf("%w: entry %d has no version", ErrInvalidRevision, i)
		}
		if len(rev.Description) == 0 {
			return fmt.Errorf("%w: entry %d has no description", ErrInvalidRevision, i)
		}
		date, err := dateutil.ParseISO(rev.Date)
		if err != nil {
			return fmt.Errorf("%w: entry %d: %v", ErrInvalidRevision, i, err)
		}
		if i > 0 {
			prev, _ := dateutil.ParseISO(c.RevisionHistory[i-1].Date)
			if date.Before(prev) {
				return fmt.Errorf("%w: entry %d predates entry %d", ErrInvalidRevision, i, i-1)
			}
		}
	}
	return nil
}

// Version returns the current document version, taken from the last
// revision entry, or DefaultVersion when no history exists.
func (c *DocumentConfig) Version() string {
	if n := len(c.RevisionHistory); n > 0 {
		return c.RevisionHistory[n-1].Version
	}
	return DefaultVersion
}

// LatestDate returns the date line for the title page: the last
// revision date in long form, or \today when no history exists.
// Expects a validated config; an unparseable date passes through raw.
func (c *DocumentConfig) LatestDate() string {
	n := len(c.RevisionHistory)
	if n == 0 {
		return `\today`
	}
	raw := c.RevisionHistory[n-1].Date
	formatted, err := dateutil.FormatISO(raw, titleDateFormat)
	if err != nil {
		return raw
	}
	return formatted
}

// Assemble builds the complete LaTeX source for the document, loading
// content files through ld in the configured order.
func (c *DocumentConfig) Assemble(ld *Loader) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	w := NewTexWriter()
	c.writePreamble(w)
	c.writeTitleBlock(w)

	w.AppendRaw(`\begin{document}`)
	w.AppendRaw(`\maketitle`)
	w.AppendRaw(`\thispagestyle{empty}`)

	w.AppendRaw(`\begin{abstract}\itshape`)
	w.AppendText(Normalize(strings.TrimSpace(c.Abstract)))
	w.AppendRaw(`\end{abstract}`)

	c.writeRevisionHistory(w)

	w.AppendRaw(`\newpage`)
	w.AppendRaw(`\tableofcontents`)
	w.AppendRaw(`\newpage`)

	for _, name := range c.Content {
		cf, err := ld.LoadContent(name)
		if err != nil {
			return "", err
		}
		if err := cf.Render(w, ld); err != nil {
			return "", err
		}
	}

	w.AppendRaw(`\end{document}`)
	return w.String() + "\n", nil
}

// Packages required by the constructs the generator emits.
var basePackages = []string{
	`\usepackage[T1]{fontenc}`,
	`\usepackage[utf8]{inputenc}`,
	`\usepackage{lmodern}`,
	`\usepackage{textcomp}`,
	`\usepackage{graphicx}`,
	`\usepackage{fancyvrb}`,
	`\usepackage{fancyhdr}`,
	`\usepackage{enumitem}`,
	`\usepackage{hyperref}`,
}

// writePreamble emits the document class, geometry, required packages,
// the caller-supplied raw preamble lines (trusted, unescaped), and the
// running header.
func (c *DocumentConfig) writePreamble(w *TexWriter) {
	g := c.GeometryOptions
	w.AppendRaw(`\documentclass[9pt]{extarticle}`)
	w.AppendRaw(fmt.Sprintf(`\usepackage[top=%s,bottom=%s,left=%s,right=%s]{geometry}`,
		g.Top, g.Bottom, g.Left, g.Right))
	for _, pkg := range basePackages {
		w.AppendRaw(pkg)
	}
	for _, line := range c.Preamble {
		w.AppendRaw(line)
	}
	w.AppendRaw(`\pagestyle{fancy}`)
	w.AppendRaw(`\fancyhead[L]{\small \textit{` + Normalize(c.Title) + `}}`)
}

// writeTitleBlock redefines \maketitle as a two-column layout with the
// title, authors and date on the left and the barcode image on the
// right, then sets the title fields.
func (c *DocumentConfig) writeTitleBlock(w *TexWriter) {
	layout := []string{
		`\makeatletter`,
		`\renewcommand{\maketitle}{%`,
		`  \bgroup\setlength{\parindent}{0pt}%`,
		`  \noindent`,
		`  \begin{minipage}[t]{0.7\textwidth}`,
		`    \vspace{0pt}%`,
		`    \raggedright`,
		`    {\Large \@title}\\[1em]`,
		`    \@author\\[1em]`,
		`    \@date`,
		`  \end{minipage}%`,
		`  \hfill`,
		`  \begin{minipage}[t]{0.25\textwidth}`,
		`    \vspace{0pt}%`,
		`    \raggedleft`,
		`    \includegraphics[width=0.75\textwidth]{` + BarcodePath + `}`,
		`  \end{minipage}`,
		`  \egroup`,
		`  \vspace{2em}`,
		`}`,
		`\makeatother`,
	}
	for _, line := range layout {
		w.AppendRaw(line)
	}

	w.AppendRaw(`\title{` + Normalize(c.Title) + `}`)
	w.AppendRaw(`\author{` + c.formatAuthors() + `}`)

	date := `{\large \textit{` + Normalize(c.Affiliation) + `}}\\[2em]\textit{` +
		c.LatestDate() + `}\\[0.5em]\textit{Version ` + c.Version() + `}`
	w.AppendRaw(`\date{` + date + `}`)
}

// formatAuthors renders the author list joined with line breaks.
// "Name|alias" entries become "name (alias)", the alias suffixed with
// "@" plus the contact domain when one is configured.
func (c *DocumentConfig) formatAuthors() string {
	formatted := make([]string, 0, len(c.Author))
	for _, a := range c.Author {
		name, alias, ok := strings.Cut(a, "|")
		if !ok {
			formatted = append(formatted, `\textit{`+Normalize(a)+`}`)
			continue
		}
		contact := strings.TrimSpace(alias)
		if c.EmailDomain != "" {
			contact += "@" + c.EmailDomain
		}
		formatted = append(formatted,
			`\textit{`+Normalize(strings.TrimSpace(name))+`} (`+contact+`)`)
	}
	return strings.Join(formatted, ` \\ `)
}

// writeRevisionHistory emits the revision table. Entries with several
// description lines render the first in the main row and the rest as
// continuation rows with blank version and date cells. An empty history
// emits nothing.
func (c *DocumentConfig) writeRevisionHistory(w *TexWriter) {
	if len(c.RevisionHistory) == 0 {
		return
	}

	w.AppendRaw(`\vspace{1em}`)
	w.AppendRaw(`\begin{center}\textit{Revision History}\end{center}`)
	w.AppendRaw(`\begin{center}`)
	w.AppendRaw(`\small`)
	w.AppendRaw(`\renewcommand{\arraystretch}{1.75}`)
	w.AppendRaw(`\begin{tabular}{@{}rll@{}}`)
	w.AppendRaw(`\textit{Version} & \textit{Date} & \textit{Description} \\`)
	w.AppendRaw(`\hline`)
	for _, rev := range c.RevisionHistory {
		w.AppendRaw(rev.Version + ` & ` + rev.Date + ` & ` + Normalize(rev.Description[0]) + ` \\`)
		for _, desc := range rev.Description[1:] {
			w.AppendRaw(`& & ` + Normalize(desc) + ` \\`)
		}
	}
	w.AppendRaw(`\end{tabular}`)
	w.AppendRaw(`\end{center}`)
	w.AppendRaw(`\newpage`)
}
