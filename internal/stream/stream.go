// Package stream feeds text from files or stdin through a bionic.Styler,
// line by line and in order.
package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fsrx/internal/bionic"
)

const bufSize = 64 * 1024

// Stats summarises one stream.
type Stats struct {
	Lines int
	Words int
	Bytes int64
}

// Open returns the input named by path. "" and "-" mean stdin, which is
// never closed.
func Open(path string) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, path, err
	}
	return f, path, nil
}

// splitEOL separates the line terminator ("\n", "\r\n" or none) from raw.
func splitEOL(raw string) (line, eol string) {
	switch {
	case strings.HasSuffix(raw, "\r\n"):
		return raw[:len(raw)-2], "\r\n"
	case strings.HasSuffix(raw, "\n"):
		return raw[:len(raw)-1], "\n"
	default:
		return raw, ""
	}
}

// Walk styles every line of r and passes it, with its original terminator,
// to emit. ctx is checked between lines only; a line is styled atomically.
func Walk(ctx context.Context, r io.Reader, s *bionic.Styler, emit func(styled, eol string) error) (Stats, error) {
	var st Stats
	startWords := s.WordCount()
	br := bufio.NewReaderSize(r, bufSize)
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return st, readErr
		}
		if raw != "" {
			line, eol := splitEOL(raw)
			styled, err := s.StyleLine(line)
			if err != nil {
				return st, fmt.Errorf("line %d: %w", st.Lines+1, err)
			}
			if err := emit(styled, eol); err != nil {
				return st, err
			}
			st.Lines++
			st.Bytes += int64(len(raw))
			st.Words = s.WordCount() - startWords
		}
		if readErr != nil {
			return st, nil
		}
	}
}

// Process writes the styled form of r to w, keeping line framing.
func Process(ctx context.Context, r io.Reader, w io.Writer, s *bionic.Styler) (Stats, error) {
	bw := bufio.NewWriterSize(w, bufSize)
	st, err := Walk(ctx, r, s, func(styled, eol string) error {
		if _, err := bw.WriteString(styled); err != nil {
			return err
		}
		_, err := bw.WriteString(eol)
		return err
	})
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return st, err
}

// Collect styles r into memory, one entry per line without terminators.
func Collect(ctx context.Context, r io.Reader, s *bionic.Styler) ([]string, Stats, error) {
	var lines []string
	st, err := Walk(ctx, r, s, func(styled, _ string) error {
		lines = append(lines, styled)
		return nil
	})
	return lines, st, err
}
