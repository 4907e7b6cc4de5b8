package transcript

import (
	"encoding/json"
	"fmt"
	"os"

	"speech-transcript-export/internal/models"
	"speech-transcript-export/internal/schema"
)

// Load reads one transcription job result from disk, parses it, and checks
// that it actually is one. Missing files, unreadable files, malformed JSON,
// and non-transcript documents are all fatal; there is nothing to recover.
func Load(path string) (models.RawTranscript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.RawTranscript{}, fmt.Errorf("read transcript: %w", err)
	}
	var raw models.RawTranscript
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.RawTranscript{}, fmt.Errorf("parse transcript %s: %w", path, err)
	}
	if err := schema.Validate(raw); err != nil {
		return models.RawTranscript{}, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}
