// Package models defines the data structures shared by the transcript pipeline:
// the raw transcription-job document, the canonical utterance table derived from
// it, and the confidence statistics computed over the table.
package models

// Item types as they appear in the raw document.
const (
	ItemTypePronunciation = "pronunciation"
	ItemTypePunctuation   = "punctuation"
)

// RawTranscript is the parsed transcription-job document. It is read-only and
// lives only for the duration of a single conversion.
type RawTranscript struct {
	AccountID string   `json:"accountId"`
	JobName   string   `json:"jobName"`
	Status    string   `json:"status"`
	Results   *Results `json:"results"`
}

// Results holds the recognition output: the ordered item stream and, for
// multi-speaker jobs, the speaker segmentation.
type Results struct {
	Transcripts   []Transcript   `json:"transcripts"`
	Items         []Item         `json:"items"`
	SpeakerLabels *SpeakerLabels `json:"speaker_labels"`
}

// Transcript carries the full recognized text as a single blob.
type Transcript struct {
	Transcript string `json:"transcript"`
}

// Item is a single recognized token. Words ("pronunciation") carry start/end
// times; punctuation carries no timing and attaches to the preceding word.
// Times and confidences are decimal text, exactly as on the wire.
type Item struct {
	Type         string        `json:"type"`
	StartTime    string        `json:"start_time,omitempty"`
	EndTime      string        `json:"end_time,omitempty"`
	Alternatives []Alternative `json:"alternatives"`
}

// Alternative is one candidate reading of an item with its confidence score.
type Alternative struct {
	Confidence string `json:"confidence"`
	Content    string `json:"content"`
}

// SpeakerLabels is the speaker segmentation section. Its presence selects the
// segmented decoding strategy.
type SpeakerLabels struct {
	Speakers int       `json:"speakers"`
	Segments []Segment `json:"segments"`
}

// Segment is a source-provided time range attributed to one speaker.
type Segment struct {
	SpeakerLabel string `json:"speaker_label"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

// HasSpeakers reports whether the document carries a usable speaker
// segmentation section.
func (t RawTranscript) HasSpeakers() bool {
	return t.Results != nil && t.Results.SpeakerLabels != nil && len(t.Results.SpeakerLabels.Segments) > 0
}
