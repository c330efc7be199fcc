package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"fsrx/internal/bionic"
)

const (
	headerHeight = 2
	statusHeight = 2
	minWidth     = 20
	minHeight    = 6
)

type pagerModel struct {
	opts Options
	th   theme

	width  int
	height int

	vp       viewport.Model
	quitting bool
}

func newPagerModel(opts Options) pagerModel {
	m := pagerModel{
		opts: opts,
		th:   defaultTheme(),
	}
	w, h := m.effectiveSize()
	m.vp = viewport.New(w, max(h-headerHeight-statusHeight, 1))
	m.vp.SetContent(strings.Join(opts.Lines, "\n"))
	return m
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch t := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = t.Width
		m.height = t.Height
		w, h := m.effectiveSize()
		m.vp.Width = w
		m.vp.Height = max(h-headerHeight-statusHeight, 1)
		return m, nil
	case tea.KeyMsg:
		switch t.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "g", "home":
			m.vp.GotoTop()
			return m, nil
		case "G", "end":
			m.vp.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if m.quitting {
		return ""
	}
	w, h := m.effectiveSize()
	if w < minWidth || h < minHeight {
		return m.viewTooSmall(w, h)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(w),
		m.vp.View(),
		m.renderStatus(w),
	)
}

func (m pagerModel) renderHeader(width int) string {
	title := runewidth.Truncate(nonEmpty(m.opts.Title, "stdin"), width-6, "…")
	return m.th.Header.Render("fsrx ") + m.th.Accent.Render(title) + "\n" + m.th.Muted.Render(settingsLine(m.opts.Config))
}

func (m pagerModel) renderStatus(width int) string {
	left := fmt.Sprintf("%d lines · %d words · %3.f%%",
		m.opts.Stats.Lines, m.opts.Stats.Words, m.vp.ScrollPercent()*100)
	right := "[j/k] scroll  [g/G] top/bottom  [q] quit"
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	line := left
	if gap >= 2 {
		line = left + strings.Repeat(" ", gap) + m.th.Keys.Render(right)
	}
	return m.th.Status.Width(width).Render(line)
}

func settingsLine(cfg bionic.Config) string {
	contrast := "off"
	if cfg.Contrast {
		contrast = "on"
	}
	return fmt.Sprintf("fixation %.1f · saccade every %d · contrast %s", cfg.FixationRatio, cfg.CycleLength, contrast)
}

func (m pagerModel) effectiveSize() (int, int) {
	w := m.width
	h := m.height
	// Headless runs may never deliver a WindowSizeMsg; assume a sane default.
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

func (m pagerModel) viewTooSmall(w, h int) string {
	lines := []string{
		m.th.Header.Render("FSRX"),
		m.th.Alert.Render("Terminal too small"),
		m.th.Muted.Render(fmt.Sprintf("Minimum: %dx%d. Current: %dx%d", minWidth, minHeight, w, h)),
	}
	return strings.Join(lines, "\n")
}

func nonEmpty(v string, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
