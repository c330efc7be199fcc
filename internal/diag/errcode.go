package diag

import (
	"context"
	"errors"
	"io/fs"

	"fsrx/internal/bionic"
)

// Code is a coarse error class used for logs and exit status.
type Code string

const (
	CodeOK        Code = "ok"
	CodeUnknown   Code = "unknown"
	CodeUsage     Code = "usage"
	CodeConfig    Code = "config"
	CodeIO        Code = "io"
	CodeInvariant Code = "invariant"
	CodeCancel    Code = "cancel"
)

// ErrUsage marks a command line the user has to fix.
var ErrUsage = errors.New("usage")

// Classify buckets err using sentinels and stdlib error types only; no
// message matching.
func Classify(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CodeCancel
	case errors.Is(err, ErrUsage):
		return CodeUsage
	case errors.Is(err, bionic.ErrConfig):
		return CodeConfig
	case errors.Is(err, bionic.ErrSpanInvariant):
		return CodeInvariant
	}
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return CodeIO
	}
	return CodeUnknown
}

// ExitCode maps a Code to the process exit status.
func ExitCode(c Code) int {
	switch c {
	case CodeOK:
		return 0
	case CodeUsage, CodeConfig:
		return 2
	case CodeInvariant:
		return 4
	case CodeCancel:
		return 130
	default:
		return 1
	}
}
