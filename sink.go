package texgen

import "strings"

// Heading levels accepted by Sink.AppendHeading.
const (
	LevelSection = iota + 1
	LevelSubsection
	LevelSubsubsection
)

// Sink receives ordered document operations from the content schema.
// It decouples content logic from final markup: the schema hands over
// normalized text, verbatim identifiers, or raw fragments, and the
// implementation decides how they appear in the output.
type Sink interface {
	AppendHeading(level int, text string)
	AppendLabel(name string)
	AppendText(text string)
	AppendRaw(markup string)
	AppendParagraphBreak()
	BeginList()
	EndList()
	AppendListItem(text string)
	BeginFigure(placement string)
	EndFigure()
	SetImage(path, width string)
	AppendCaption(text string)
}

// TexWriter renders sink operations as LaTeX source lines.
// The zero value is ready to use.
type TexWriter struct {
	lines []string
}

// NewTexWriter returns an empty writer.
func NewTexWriter() *TexWriter {
	return &TexWriter{}
}

func (w *TexWriter) AppendHeading(level int, text string) {
	switch level {
	case LevelSection:
		w.appendLine(`\section{` + text + `}`)
	case LevelSubsection:
		w.appendLine(`\subsection{` + text + `}`)
	default:
		w.appendLine(`\subsubsection{` + text + `}`)
	}
}

func (w *TexWriter) AppendLabel(name string) {
	w.appendLine(`\label{` + name + `}`)
}

func (w *TexWriter) AppendText(text string) {
	w.appendLine(text)
}

func (w *TexWriter) AppendRaw(markup string) {
	w.appendLine(markup)
}

func (w *TexWriter) AppendParagraphBreak() {
	w.appendLine(`\par\vspace{\baselineskip}`)
}

func (w *TexWriter) BeginList() {
	w.appendLine(`\begin{itemize}[topsep=0pt]`)
}

func (w *TexWriter) EndList() {
	w.appendLine(`\end{itemize}`)
}

func (w *TexWriter) AppendListItem(text string) {
	if text == "" {
		w.appendLine(`\item`)
		return
	}
	w.appendLine(`\item ` + text)
}

func (w *TexWriter) BeginFigure(placement string) {
	w.appendLine(`\begin{figure}[` + placement + `]`)
}

func (w *TexWriter) EndFigure() {
	w.appendLine(`\end{figure}`)
}

func (w *TexWriter) SetImage(path, width string) {
	w.appendLine(`\centering`)
	w.appendLine(`\includegraphics[width=` + width + `]{` + path + `}`)
}

func (w *TexWriter) AppendCaption(text string) {
	w.appendLine(`\caption{` + text + `}`)
}

func (w *TexWriter) appendLine(s string) {
	w.lines = append(w.lines, s)
}

// String returns the accumulated LaTeX source.
func (w *TexWriter) String() string {
	return strings.Join(w.lines, "\n")
}
