package models

// UtteranceRow is one canonical record of spoken content attributed to a time
// and, when the source was segmented by speaker, to a speaker label.
type UtteranceRow struct {
	// StartTime is the start of the first contributing item, kept as the
	// original decimal-seconds text and formatted only on output.
	StartTime string
	// EndTime is the end of the last contributing word, decimal-seconds text.
	// Encoders that need a row duration (captions) read it; the tabular
	// encoders do not emit it.
	EndTime string
	// Speaker is the source speaker label, empty for single-speaker input.
	Speaker string
	// Content is the assembled text: words joined by single spaces,
	// punctuation glued to the preceding word. Never empty.
	Content string
	// Confidence is the lowest confidence among the words contributing to
	// this row. Punctuation contributes no confidence.
	Confidence float64
}

// WordMark is one word's (start time, confidence) pair, used for the
// statistics time series and bucket counts.
type WordMark struct {
	Time       float64
	Confidence float64
}

// Warning records one recoverable defect encountered while decoding. The
// offending entry is skipped; decoding continues.
type Warning struct {
	// Index is the position of the entry within its source list (item index
	// or speaker-segment index, per Reason).
	Index  int
	Reason string
}

// Table is the canonical, format-agnostic result of decoding one transcript:
// the ordered utterance rows, the word-level marks backing the statistics, and
// the diagnostics gathered along the way. It is immutable once built.
type Table struct {
	Rows     []UtteranceRow
	Marks    []WordMark
	Warnings []Warning
}

// Empty reports whether decoding produced no usable content.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}
