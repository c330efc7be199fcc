package bionic

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

type SpanKind int

const (
	Gap SpanKind = iota
	Word
)

func (k SpanKind) String() string {
	switch k {
	case Gap:
		return "gap"
	case Word:
		return "word"
	default:
		return "unknown"
	}
}

// Span is a maximal run of word or non-word grapheme clusters.
type Span struct {
	Kind      SpanKind
	Graphemes []string
}

func (s Span) Text() string { return strings.Join(s.Graphemes, "") }

// Len is the span length in grapheme clusters.
func (s Span) Len() int { return len(s.Graphemes) }

// isWordRune is the broad word class: what a Unicode \w matches, plus
// backslash and apostrophe so contractions and escaped text stay whole.
func isWordRune(r rune) bool {
	switch r {
	case '\\', '\'', '\u200c', '\u200d':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Nl, unicode.Pc, unicode.Other_Alphabetic)
}

// isWordGrapheme classifies a cluster by its base (first) rune, so a
// cluster is never split between spans. Invalid bytes decode to RuneError
// and land in a GAP.
func isWordGrapheme(g string) bool {
	r, size := utf8.DecodeRuneInString(g)
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return isWordRune(r)
}

// Tokenize splits line into contiguous WORD and GAP spans. An empty line
// yields no spans.
func Tokenize(line string) []Span {
	if line == "" {
		return nil
	}
	var (
		spans []Span
		cur   Span
		rest  = line
		state = -1
		g     string
	)
	for len(rest) > 0 {
		g, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		kind := Gap
		if isWordGrapheme(g) {
			kind = Word
		}
		if len(cur.Graphemes) > 0 && cur.Kind != kind {
			spans = append(spans, cur)
			cur = Span{}
		}
		cur.Kind = kind
		cur.Graphemes = append(cur.Graphemes, g)
	}
	if len(cur.Graphemes) > 0 {
		spans = append(spans, cur)
	}
	return spans
}

// ValidateSpans checks that spans rebuild line exactly, with no empty span
// and no two adjacent spans of the same kind.
func ValidateSpans(line string, spans []Span) error {
	off := 0
	for i, sp := range spans {
		if sp.Len() == 0 {
			return fmt.Errorf("%w: span %d is empty", ErrSpanInvariant, i)
		}
		if i > 0 && spans[i-1].Kind == sp.Kind {
			return fmt.Errorf("%w: spans %d and %d are both %s", ErrSpanInvariant, i-1, i, sp.Kind)
		}
		for _, g := range sp.Graphemes {
			if g == "" {
				return fmt.Errorf("%w: empty grapheme in span %d", ErrSpanInvariant, i)
			}
			end := off + len(g)
			if end > len(line) || line[off:end] != g {
				return fmt.Errorf("%w: span %d diverges from line at byte %d", ErrSpanInvariant, i, off)
			}
			off = end
		}
	}
	if off != len(line) {
		return fmt.Errorf("%w: spans cover %d of %d bytes", ErrSpanInvariant, off, len(line))
	}
	return nil
}
