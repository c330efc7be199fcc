package bionic

import "errors"

var (
	// ErrConfig marks a configuration rejected at construction time.
	ErrConfig = errors.New("invalid styler configuration")
	// ErrSpanInvariant marks spans that do not rebuild their line exactly.
	// It indicates a tokenizer defect, not bad input.
	ErrSpanInvariant = errors.New("span invariant violation")
)
