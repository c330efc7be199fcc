package bionic

import (
	"strings"

	"github.com/muesli/termenv"
)

// Style is the rendering of a single fragment.
type Style int

const (
	Plain Style = iota
	Bold
	Dim
)

func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Dim:
		return "dim"
	default:
		return "unknown"
	}
}

// Fragment is one grapheme cluster (or, after coalescing, a run of them)
// and the style it is drawn with.
type Fragment struct {
	Text  string
	Style Style
}

// Renderer encodes fragments as SGR escape sequences. It never writes to a
// terminal itself, and the fragment text is wrapped byte for byte.
type Renderer struct {
	bold     termenv.Style
	dim      termenv.Style
	coalesce bool
}

// NewRenderer pins the ANSI profile so output does not depend on whether
// stdout is a terminal.
func NewRenderer(coalesce bool) *Renderer {
	return &Renderer{
		bold:     termenv.ANSI.String().Bold(),
		dim:      termenv.ANSI.String().Faint(),
		coalesce: coalesce,
	}
}

func (r *Renderer) Render(frags []Fragment) string {
	if r.coalesce {
		frags = Coalesce(frags)
	}
	var b strings.Builder
	for _, f := range frags {
		if f.Text == "" {
			continue
		}
		switch f.Style {
		case Bold:
			b.WriteString(r.bold.Styled(f.Text))
		case Dim:
			b.WriteString(r.dim.Styled(f.Text))
		default:
			b.WriteString(f.Text)
		}
	}
	return b.String()
}

// Coalesce merges adjacent fragments that share a style.
func Coalesce(frags []Fragment) []Fragment {
	if len(frags) < 2 {
		return frags
	}
	out := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if n := len(out); n > 0 && out[n-1].Style == f.Style {
			out[n-1].Text += f.Text
			continue
		}
		out = append(out, f)
	}
	return out
}
