package bionic

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

const (
	dimOn  = "\x1b[2m"
	boldOn = "\x1b[1m"
	reset  = "\x1b[0m"
)

func dim(s string) string  { return dimOn + s + reset }
func bold(s string) string { return boldOn + s + reset }

func mustStyler(t *testing.T, fix, sac Intensity, contrast bool) *Styler {
	t.Helper()
	cfg, err := NewConfig(fix, sac, contrast)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestStyleLineTheCatSat(t *testing.T) {
	s := mustStyler(t, Medium, High, false)
	got, err := s.StyleLine("the cat sat")
	if err != nil {
		t.Fatalf("StyleLine: %v", err)
	}
	want := "th" + dim("e") + dim(" ") + "ca" + dim("t") + dim(" ") + "sa" + dim("t")
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
	if s.WordCount() != 3 {
		t.Fatalf("word count = %d, want 3", s.WordCount())
	}
}

func TestStyleLineContrast(t *testing.T) {
	s := mustStyler(t, Medium, High, true)
	got, err := s.StyleLine("the")
	if err != nil {
		t.Fatalf("StyleLine: %v", err)
	}
	want := bold("t") + bold("h") + dim("e")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCycleEligibility(t *testing.T) {
	cases := []struct {
		saccade Intensity
		want    []bool
	}{
		{High, []bool{true, true, true, true, true, true}},
		{Medium, []bool{false, true, false, true, false, true}},
		{Low, []bool{false, false, true, false, false, true}},
	}
	for _, tc := range cases {
		s := mustStyler(t, Medium, tc.saccade, false)
		frags, err := s.Fragments("A B C D E F")
		if err != nil {
			t.Fatalf("Fragments: %v", err)
		}
		var got []bool
		for _, f := range frags {
			if f.Text == " " {
				if f.Style != Dim {
					t.Fatalf("gap rendered %s, want dim", f.Style)
				}
				continue
			}
			got = append(got, f.Style == Plain)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("saccade %s: got %d words, want %d", tc.saccade, len(got), len(tc.want))
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("saccade %s: eligibility %v, want %v", tc.saccade, got, tc.want)
			}
		}
	}
}

func TestCounterSpansLines(t *testing.T) {
	s := mustStyler(t, High, Low, false)
	lines := []string{"one two", "", "three, four", "...", "five six"}
	wantCounts := []int{2, 2, 4, 4, 6}
	var out []string
	for i, line := range lines {
		got, err := s.StyleLine(line)
		if err != nil {
			t.Fatalf("StyleLine(%q): %v", line, err)
		}
		out = append(out, got)
		if s.WordCount() != wantCounts[i] {
			t.Fatalf("after line %d count = %d, want %d", i, s.WordCount(), wantCounts[i])
		}
	}
	if out[1] != "" {
		t.Fatalf("empty line rendered %q", out[1])
	}
	// Third word of the stream is the first eligible one with cycle 3.
	if !strings.HasPrefix(out[2], "thr") {
		t.Fatalf("line 3 should start with emphasized prefix, got %q", out[2])
	}
	if !strings.Contains(out[4], "six") {
		t.Fatalf("sixth word should be emphasized, got %q", out[4])
	}
	if strings.HasPrefix(out[4], "f") {
		t.Fatalf("fifth word is not eligible, got %q", out[4])
	}
}

func TestNonEligibleWordFullyDimmed(t *testing.T) {
	s := mustStyler(t, High, Medium, true)
	frags, err := s.Fragments("alpha beta")
	if err != nil {
		t.Fatalf("Fragments: %v", err)
	}
	for _, f := range frags[:6] { // "alpha "
		if f.Style != Dim {
			t.Fatalf("first word must be fully dimmed, got %+v", frags[:6])
		}
	}
	// beta: 4 graphemes, 0.7 -> 3 bold.
	styles := []Style{Bold, Bold, Bold, Dim}
	for i, f := range frags[6:] {
		if f.Style != styles[i] {
			t.Fatalf("beta[%d] = %s, want %s", i, f.Style, styles[i])
		}
	}
}

func TestGraphemeBoundaryNotBytes(t *testing.T) {
	s := mustStyler(t, Medium, High, false)
	// "naïve" with a combining diaeresis: 5 clusters, 7 bytes.
	line := "nai\u0308ve"
	frags, err := s.Fragments(line)
	if err != nil {
		t.Fatalf("Fragments: %v", err)
	}
	if len(frags) != 5 {
		t.Fatalf("got %d fragments, want 5 clusters", len(frags))
	}
	if frags[2].Text != "i\u0308" {
		t.Fatalf("combining mark split from its base: %q", frags[2].Text)
	}
	want := []Style{Plain, Plain, Plain, Dim, Dim}
	for i, f := range frags {
		if f.Style != want[i] {
			t.Fatalf("cluster %d style %s, want %s", i, f.Style, want[i])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"the cat sat",
		"don't stop_me now\\here",
		"tabs\tand\tmore\ttabs",
		"日本語のテキスト と English",
		"مرحبا بالعالم",
		"emoji 👨\u200d👩\u200d👧 family 🇫🇷 flag",
		"2024-01-02: v1.2.3 (done!)",
		"\r stray carriage return",
	}
	for _, contrast := range []bool{false, true} {
		for _, coalesce := range []bool{false, true} {
			cfg, _ := NewConfig(High, Medium, contrast)
			cfg.Coalesce = coalesce
			s, err := New(cfg)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			for _, line := range lines {
				got, err := s.StyleLine(line)
				if err != nil {
					t.Fatalf("StyleLine(%q): %v", line, err)
				}
				if plain := ansi.Strip(got); plain != line {
					t.Fatalf("round trip lost text: %q -> %q", line, plain)
				}
			}
		}
	}
}

func TestInvalidUTF8PassesThrough(t *testing.T) {
	s := mustStyler(t, Medium, High, false)
	got, err := s.StyleLine("ab\xffcd")
	if err != nil {
		t.Fatalf("StyleLine: %v", err)
	}
	want := "a" + dim("b") + dim("\xff") + "c" + dim("d")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCoalesceMergesRuns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Coalesce = true
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, _ := s.StyleLine("hello world")
	want := "hel" + dim("lo ") + "wor" + dim("ld")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	bad := []Config{
		{FixationRatio: 0, CycleLength: 1},
		{FixationRatio: 1.5, CycleLength: 1},
		{FixationRatio: -0.2, CycleLength: 2},
		{FixationRatio: 0.5, CycleLength: 0},
	}
	for _, cfg := range bad {
		if _, err := New(cfg); !errors.Is(err, ErrConfig) {
			t.Fatalf("New(%+v) err = %v, want ErrConfig", cfg, err)
		}
	}
	if _, err := NewConfig(Intensity(9), High, false); !errors.Is(err, ErrConfig) {
		t.Fatalf("unknown fixation intensity accepted")
	}
	if _, err := NewConfig(Medium, Intensity(-1), false); !errors.Is(err, ErrConfig) {
		t.Fatalf("unknown saccade intensity accepted")
	}
	if _, err := New(Config{FixationRatio: 1, CycleLength: 7}); err != nil {
		t.Fatalf("ratio 1 with long cycle should be valid: %v", err)
	}
}

func TestFullFixationHasNoDimSuffix(t *testing.T) {
	s, err := New(Config{FixationRatio: 1, CycleLength: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, _ := s.StyleLine("word")
	if got != "word" {
		t.Fatalf("got %q, want unstyled word", got)
	}
}

func TestStyleLineRejectsLineBreaks(t *testing.T) {
	for _, coalesce := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.Coalesce = coalesce
		s, err := New(cfg)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		for _, line := range []string{"a\r\nb", "x !\n!!!!", "\r\n mid"} {
			got, err := s.StyleLine(line)
			if !errors.Is(err, ErrSpanInvariant) {
				t.Fatalf("StyleLine(%q) = %q, %v; want ErrSpanInvariant", line, got, err)
			}
		}
		if s.WordCount() != 0 {
			t.Fatalf("word count = %d after rejected lines, want 0", s.WordCount())
		}
	}
}

func TestRenderKeepsBytes(t *testing.T) {
	r := NewRenderer(true)
	frags := []Fragment{
		{Text: "x", Style: Plain},
		{Text: " ", Style: Dim},
		{Text: "\r", Style: Dim},
		{Text: "\t!", Style: Bold},
	}
	got := r.Render(frags)
	want := "x" + dim(" \r") + bold("\t!")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
