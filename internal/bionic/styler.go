package bionic

import (
	"fmt"
	"strings"
)

// Styler styles the lines of one stream. It owns the saccade counter, so
// lines must be fed in stream order from a single goroutine.
type Styler struct {
	cfg   Config
	sched Scheduler
	rend  *Renderer
}

func New(cfg Config) (*Styler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Styler{
		cfg:   cfg,
		sched: NewScheduler(cfg.CycleLength),
		rend:  NewRenderer(cfg.Coalesce),
	}, nil
}

func (s *Styler) Config() Config { return s.cfg }

// WordCount is the number of WORD spans styled so far across the stream.
func (s *Styler) WordCount() int { return s.sched.Count() }

// Fragments tokenizes line, advances the counter once per word and returns
// the styled grapheme sequence. The counter is untouched when the line
// fails validation or carries a line break.
func (s *Styler) Fragments(line string) ([]Fragment, error) {
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		return nil, fmt.Errorf("%w: line break at byte %d", ErrSpanInvariant, i)
	}
	spans := Tokenize(line)
	if err := ValidateSpans(line, spans); err != nil {
		return nil, err
	}
	emph := Plain
	if s.cfg.Contrast {
		emph = Bold
	}
	var frags []Fragment
	for _, sp := range spans {
		boundary := 0
		if sp.Kind == Word && s.sched.Next() {
			boundary = EmphasisBoundary(sp.Len(), s.cfg.FixationRatio)
		}
		for i, g := range sp.Graphemes {
			st := Dim
			if i < boundary {
				st = emph
			}
			frags = append(frags, Fragment{Text: g, Style: st})
		}
	}
	return frags, nil
}

// StyleLine returns the styled form of a newline-free line.
func (s *Styler) StyleLine(line string) (string, error) {
	frags, err := s.Fragments(line)
	if err != nil {
		return "", err
	}
	return s.rend.Render(frags), nil
}
