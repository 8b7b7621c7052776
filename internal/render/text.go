package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// FixedWidth left-aligns s in exactly w terminal cells, padding with spaces
// or cutting off the overflow. Wide runes count as two cells.
func FixedWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, "")
	}
	return runewidth.FillRight(s, w)
}

// Segment is a run of text sharing one style.
type Segment struct {
	Text  string
	Style lipgloss.Style
}

// Styled pairs text with a style.
func Styled(text string, style lipgloss.Style) Segment {
	return Segment{Text: text, Style: style}
}

func (s Segment) Width() int { return runewidth.StringWidth(s.Text) }

// Row is one printable line made of styled segments.
type Row struct {
	segments []Segment
}

func (r *Row) Append(s Segment) { r.segments = append(r.segments, s) }

// Segments returns a copy of the row's segments.
func (r Row) Segments() []Segment {
	out := make([]Segment, len(r.segments))
	copy(out, r.segments)
	return out
}

func (r Row) Len() int { return len(r.segments) }

// Plain returns the row text without styling.
func (r Row) Plain() string {
	var b strings.Builder
	for _, s := range r.segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Render returns the row text with each segment's style applied.
func (r Row) Render() string {
	var b strings.Builder
	for _, s := range r.segments {
		b.WriteString(s.Style.Render(s.Text))
	}
	return b.String()
}

// Width is the printed width of the row in cells.
func (r Row) Width() int {
	n := 0
	for _, s := range r.segments {
		n += s.Width()
	}
	return n
}
