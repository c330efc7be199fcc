// Package bionic turns lines of text into a bionic-reading stream for ANSI
// terminals.
//
// A line is split into WORD and GAP spans on grapheme cluster boundaries.
// Every WORD advances a stream-wide saccade counter; only words whose
// position lands on the configured cycle are emphasized. For those, the
// leading ceil(n*ratio) grapheme clusters are rendered plain (or bold in
// contrast mode) and the rest dimmed. GAP spans and skipped words are fully
// dimmed. The literal text of every grapheme is preserved byte for byte.
//
// A Styler owns the counter and must be used for one stream, in order, from
// a single goroutine.
package bionic
