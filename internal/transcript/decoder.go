// Package transcript normalizes raw transcription job results into the
// canonical utterance table the report encoders consume.
package transcript

import "speech-transcript-export/internal/models"

// shapeDecoder is the strategy for one input shape. Both implementations
// produce the same table semantics; only the row grouping differs.
type shapeDecoder interface {
	decode(results *models.Results) models.Table
}

// Decode normalizes one validated transcript into the canonical utterance
// table. The input shape is detected once at entry: a speaker_labels section
// with at least one segment selects segmented decoding, anything else is
// decoded flat. Recoverable item defects are skipped and reported through
// Table.Warnings; they never fail the decode. Decoding the same input twice
// yields identical tables.
func Decode(raw models.RawTranscript) models.Table {
	if raw.Results == nil {
		return models.Table{}
	}
	var d shapeDecoder
	if raw.HasSpeakers() {
		d = segmentedDecoder{}
	} else {
		d = flatDecoder{}
	}
	return d.decode(raw.Results)
}
