package texgen

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// Content record discriminator values.
const (
	typeEmbed     = "embed"
	typeParagraph = "paragraph"
	typeItemize   = "itemize"
	typeImage     = "image"
	typeCode      = "code"
)

// Defaults applied when a record leaves a field unset.
const (
	DefaultFontSize   = "small"
	DefaultImageWidth = `0.8\textwidth`
	DefaultPlacement  = "htbp" // h=here, t=top, b=bottom, p=page; "H" pins exactly
)

// Node is one renderable content record. Nodes are built once at load
// time, are immutable, and render exactly once into the sink.
type Node interface {
	Render(s Sink, ld *Loader) error
}

// Compile-time interface implementation checks.
var (
	_ Node = (*TextNode)(nil)
	_ Node = (*VerbatimNode)(nil)
	_ Node = (*ListNode)(nil)
	_ Node = (*ImageNode)(nil)
	_ Node = (*EmbedNode)(nil)
	_ Sink = (*TexWriter)(nil)
)

// ContentFile is one YAML content document: an optional section title
// and anchor label followed by an ordered list of content records.
type ContentFile struct {
	Title   string   `yaml:"title"`
	Label   string   `yaml:"label"`
	Content NodeList `yaml:"content"`
}

// Render emits the optional heading and label, then every node in order.
func (c *ContentFile) Render(s Sink, ld *Loader) error {
	if c.Title != "" {
		s.AppendHeading(LevelSection, Normalize(c.Title))
	}
	if c.Label != "" {
		s.AppendLabel(c.Label)
	}
	for _, n := range c.Content {
		if err := n.Render(s, ld); err != nil {
			return err
		}
	}
	return nil
}

// NodeList decodes a YAML sequence of content records into typed nodes,
// dispatching on the type discriminator.
type NodeList []Node

// contentRecord is the union of all record fields; the discriminator
// decides which subset is meaningful.
type contentRecord struct {
	Type string `yaml:"type"`

	Text          string `yaml:"text"`
	Section       string `yaml:"section"`
	Subsection    string `yaml:"subsection"`
	Subsubsection string `yaml:"subsubsection"`
	Label         string `yaml:"label"`
	Newline       *bool  `yaml:"newline"`
	FontSize      string `yaml:"font_size"`

	Items []ListItem `yaml:"items"`

	Src       string `yaml:"src"`
	Caption   string `yaml:"caption"`
	Width     string `yaml:"width"`
	Placement string `yaml:"placement"`
}

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (l *NodeList) UnmarshalYAML(data []byte) error {
	var records []contentRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return err
	}

	nodes := make(NodeList, 0, len(records))
	for _, r := range records {
		n, err := r.node()
		if err != nil {
			return err
		}
		// Unrecognized discriminators are skipped.
		if n != nil {
			nodes = append(nodes, n)
		}
	}
	*l = nodes
	return nil
}

// node builds the typed variant for one record, validating the fields
// the variant requires.
func (r contentRecord) node() (Node, error) {
	switch r.Type {
	case typeEmbed:
		if r.Src == "" {
			return nil, fmt.Errorf("%w: embed record requires src", ErrMissingField)
		}
		return &EmbedNode{Src: r.Src}, nil

	case typeParagraph:
		return &TextNode{
			Text:          r.Text,
			Section:       r.Section,
			Subsection:    r.Subsection,
			Subsubsection: r.Subsubsection,
			Label:         r.Label,
			Newline:       boolOr(r.Newline, true),
		}, nil

	case typeItemize:
		if len(r.Items) == 0 {
			return nil, fmt.Errorf("%w: itemize record requires items", ErrMissingField)
		}
		return &ListNode{
			Items:   r.Items,
			Newline: boolOr(r.Newline, true),
		}, nil

	case typeImage:
		if r.Src == "" {
			return nil, fmt.Errorf("%w: image record requires src", ErrMissingField)
		}
		if r.Caption == "" {
			return nil, fmt.Errorf("%w: image record requires caption", ErrMissingField)
		}
		return &ImageNode{
			Src:       r.Src,
			Caption:   r.Caption,
			Label:     r.Label,
			Width:     stringOr(r.Width, DefaultImageWidth),
			Placement: stringOr(r.Placement, DefaultPlacement),
		}, nil

	case typeCode:
		if r.Text == "" {
			return nil, fmt.Errorf("%w: code record requires text", ErrMissingField)
		}
		return &VerbatimNode{
			Text:     r.Text,
			FontSize: stringOr(r.FontSize, DefaultFontSize),
			Newline:  boolOr(r.Newline, true),
		}, nil
	}

	return nil, nil
}

// TextNode is a prose paragraph with optional heading and anchor.
type TextNode struct {
	Text          string
	Section       string
	Subsection    string
	Subsubsection string
	Label         string
	Newline       bool
}

// Render emits headings and body as normalized text. The anchor label
// is a typesetting identifier, not prose, and is inserted verbatim.
func (n *TextNode) Render(s Sink, _ *Loader) error {
	if n.Section != "" {
		s.AppendHeading(LevelSection, Normalize(n.Section))
	}
	if n.Subsection != "" {
		s.AppendHeading(LevelSubsection, Normalize(n.Subsection))
	}
	if n.Subsubsection != "" {
		s.AppendHeading(LevelSubsubsection, Normalize(n.Subsubsection))
	}
	if n.Label != "" {
		s.AppendLabel(n.Label)
	}
	s.AppendText(Normalize(n.Text))
	if n.Newline {
		s.AppendParagraphBreak()
	}
	return nil
}

// VerbatimNode is a fixed-width block whose body is never normalized.
type VerbatimNode struct {
	Text     string
	FontSize string
	Newline  bool
}

func (n *VerbatimNode) Render(s Sink, _ *Loader) error {
	block := `{\` + n.FontSize + "\n" +
		`\begin{verbatim}` + "\n" + n.Text + "\n" + `\end{verbatim}}`
	s.AppendRaw(block)
	if n.Newline {
		s.AppendRaw(`\vspace{\baselineskip}`)
	}
	return nil
}

// ListNode is an unordered list.
type ListNode struct {
	Items   []ListItem
	Newline bool
}

func (n *ListNode) Render(s Sink, _ *Loader) error {
	s.BeginList()
	for _, item := range n.Items {
		renderItem(s, item)
	}
	s.EndList()
	if n.Newline {
		s.AppendRaw(`\vspace{\baselineskip}`)
	}
	return nil
}

// renderItem emits one list item. For structured items the first
// emitted part introduces the list marker regardless of its kind; text
// parts are normalized and code parts pass through in a Verbatim block
// at the item's font size. Parts with neither text nor code are skipped
// without consuming the marker.
func renderItem(s Sink, item ListItem) {
	size := stringOr(item.FontSize, DefaultFontSize)

	if len(item.Parts) == 0 {
		// Plain item, or the legacy shape with text/code at the top level.
		s.AppendListItem(Normalize(item.Text))
		if item.Code != "" {
			s.AppendRaw(verbatimFragment(item.Code, size))
		}
		return
	}

	first := true
	for _, p := range item.Parts {
		switch {
		case p.Text != "":
			if first {
				s.AppendListItem(Normalize(p.Text))
			} else {
				s.AppendText(Normalize(p.Text))
			}
			first = false
		case p.Code != "":
			if first {
				s.AppendListItem("")
			}
			s.AppendRaw(verbatimFragment(p.Code, size))
			first = false
		}
	}
}

// verbatimFragment builds the Verbatim block used inside list items.
func verbatimFragment(code, size string) string {
	return `\begin{Verbatim}[fontsize=\` + size + `]` + "\n" +
		strings.TrimRight(code, "\n") + "\n" + `\end{Verbatim}`
}

// ListItem is either plain text or a structured sequence of parts.
// The Text and Code fields also carry the legacy item shape where both
// appear at the top level instead of under parts.
type ListItem struct {
	Text     string
	Code     string
	FontSize string
	Parts    []ListPart
}

// listItemRecord mirrors the structured mapping shape of an item.
type listItemRecord struct {
	Text     string     `yaml:"text"`
	Code     string     `yaml:"code"`
	FontSize string     `yaml:"font_size"`
	Parts    []ListPart `yaml:"parts"`
}

// UnmarshalYAML accepts either a plain scalar or the structured mapping.
func (i *ListItem) UnmarshalYAML(data []byte) error {
	var plain string
	if err := yaml.Unmarshal(data, &plain); err == nil {
		*i = ListItem{Text: plain}
		return nil
	}

	var rec listItemRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return err
	}
	*i = ListItem{
		Text:     rec.Text,
		Code:     rec.Code,
		FontSize: rec.FontSize,
		Parts:    rec.Parts,
	}
	return nil
}

// ListPart is one segment of a structured list item: a text span when
// Text is set, otherwise a code span.
type ListPart struct {
	Text string `yaml:"text"`
	Code string `yaml:"code"`
}

// ImageNode is a floating figure with caption and optional anchor.
type ImageNode struct {
	Src       string
	Caption   string
	Label     string
	Width     string
	Placement string
}

func (n *ImageNode) Render(s Sink, _ *Loader) error {
	s.BeginFigure(n.Placement)
	s.SetImage(n.Src, n.Width)
	s.AppendCaption(Normalize(n.Caption))
	if n.Label != "" {
		s.AppendLabel(n.Label)
	}
	s.EndFigure()
	s.AppendRaw(`\vspace{\baselineskip}`)
	return nil
}

// EmbedNode renders another content file in place. Cycles are not
// detected; configuration is trusted.
type EmbedNode struct {
	Src string
}

func (n *EmbedNode) Render(s Sink, ld *Loader) error {
	nested, err := ld.LoadContent(n.Src)
	if err != nil {
		return err
	}
	return nested.Render(s, ld)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
