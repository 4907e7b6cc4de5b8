// Package schema checks that a decoded payload is actually a transcription
// job result before the pipeline tries to interpret it.
package schema

import (
	"errors"
	"fmt"

	"speech-transcript-export/internal/models"
)

// ErrNotTranscript marks input that parsed as JSON but does not carry a
// transcription results section.
var ErrNotTranscript = errors.New("schema: document is not a transcription job result")

// Validate returns nil when raw carries a results section, ErrNotTranscript
// otherwise. An empty results section is valid; absence of the section is not.
func Validate(raw models.RawTranscript) error {
	if raw.Results == nil {
		return fmt.Errorf("%w: missing results", ErrNotTranscript)
	}
	return nil
}
