// Package tui is the interactive reader: a full-screen, scrollable view of
// an already styled document.
package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"fsrx/internal/bionic"
	"fsrx/internal/stream"
)

// Options describe what the pager shows.
type Options struct {
	Title  string
	Config bionic.Config
	Stats  stream.Stats
	Lines  []string
	// Output is the terminal the pager draws on; nil means os.Stdout.
	Output io.Writer
}

// Run blocks until the user quits or ctx is done. Keys come from the
// controlling terminal, so the document itself may have been piped in.
func Run(ctx context.Context, opts Options) error {
	var out io.Writer = os.Stdout
	if opts.Output != nil {
		out = opts.Output
	}
	p := tea.NewProgram(
		newPagerModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInputTTY(),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	return err
}
