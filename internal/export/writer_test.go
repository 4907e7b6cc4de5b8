package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"speech-transcript-export/internal/chart"
	"speech-transcript-export/internal/config"
	"speech-transcript-export/internal/output"
)

// segmentedJSON is a two-speaker transcription job: two utterance rows, four
// scored words.
const segmentedJSON = `{
	"accountId": "123456789012",
	"jobName": "standup",
	"status": "COMPLETED",
	"results": {
		"transcripts": [{"transcript": "good morning. thanks everyone."}],
		"items": [
			{"type": "pronunciation", "start_time": "0.04", "end_time": "0.5",
			 "alternatives": [{"confidence": "0.99", "content": "good"}]},
			{"type": "pronunciation", "start_time": "0.6", "end_time": "1.1",
			 "alternatives": [{"confidence": "0.91", "content": "morning"}]},
			{"type": "punctuation",
			 "alternatives": [{"confidence": "0.0", "content": "."}]},
			{"type": "pronunciation", "start_time": "2.0", "end_time": "2.4",
			 "alternatives": [{"confidence": "0.85", "content": "thanks"}]},
			{"type": "pronunciation", "start_time": "2.5", "end_time": "3.0",
			 "alternatives": [{"confidence": "0.97", "content": "everyone"}]},
			{"type": "punctuation",
			 "alternatives": [{"confidence": "0.0", "content": "."}]}
		],
		"speaker_labels": {
			"speakers": 2,
			"segments": [
				{"speaker_label": "spk_0", "start_time": "0.04", "end_time": "1.2"},
				{"speaker_label": "spk_1", "start_time": "2.0", "end_time": "3.1"}
			]
		}
	}
}`

// writeInput drops the fixture into a fresh directory and returns its path.
func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "standup.json")
	if err := os.WriteFile(path, []byte(segmentedJSON), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func mustNotExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("%s exists, want it absent (stat err = %v)", path, err)
	}
}

func TestWrite_DefaultsToDocx(t *testing.T) {
	input := writeInput(t)

	if err := NewWriter().Write(config.Options{Input: input}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	dest := strings.TrimSuffix(input, ".json") + ".docx"
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("output does not look like a document package (starts %q)", data[:2])
	}
	// The chart lands next to the output regardless of format.
	if _, err := os.Stat(filepath.Join(filepath.Dir(dest), chart.FileName)); err != nil {
		t.Errorf("chart image missing next to output: %v", err)
	}
}

func TestWrite_ExplicitFormat(t *testing.T) {
	input := writeInput(t)

	if err := NewWriter().Write(config.Options{Input: input, Format: "csv"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	dest := strings.TrimSuffix(input, ".json") + ".csv"
	f, err := os.Open(dest)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("record count = %d, want header plus two rows", len(records))
	}
	if got := records[1]; got[1] != "spk_0" || got[2] != "good morning." {
		t.Errorf("first row = %v, want spk_0 saying %q", got, "good morning.")
	}
}

func TestWrite_SaveAsExtensionSelectsFormat(t *testing.T) {
	input := writeInput(t)
	dest := filepath.Join(filepath.Dir(input), "captions.vtt")

	if err := NewWriter().Write(config.Options{Input: input, SaveAs: dest}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("WEBVTT\n")) {
		t.Errorf("output does not start with the WEBVTT header")
	}
}

func TestWrite_SaveAsDBAlias(t *testing.T) {
	input := writeInput(t)
	dest := filepath.Join(filepath.Dir(input), "transcript.db")

	if err := NewWriter().Write(config.Options{Input: input, SaveAs: dest}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("SQLite format 3\x00")) {
		t.Errorf("output is not a sqlite database")
	}
}

func TestWrite_UnrecognizedSaveAsExtension(t *testing.T) {
	input := writeInput(t)
	dest := filepath.Join(filepath.Dir(input), "report.data")

	if err := NewWriter().Write(config.Options{Input: input, SaveAs: dest}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("fallback output is not the default document format")
	}
}

func TestWrite_ExplicitFormatBeatsExtension(t *testing.T) {
	input := writeInput(t)
	dest := filepath.Join(filepath.Dir(input), "report.docx")

	if err := NewWriter().Write(config.Options{Input: input, SaveAs: dest, Format: "csv"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("Time,Speaker,Content,Confidence")) {
		t.Errorf("explicit format lost to the save-as extension")
	}
}

func TestWrite_CreatesIntermediateDirectories(t *testing.T) {
	input := writeInput(t)
	dest := filepath.Join(filepath.Dir(input), "out", "nested", "captions.vtt")

	if err := NewWriter().Write(config.Options{Input: input, SaveAs: dest}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dest), chart.FileName)); err != nil {
		t.Errorf("chart image missing next to output: %v", err)
	}
}

func TestWrite_TmpDirDeprecated(t *testing.T) {
	input := writeInput(t)

	err := NewWriter().Write(config.Options{Input: input, TmpDir: "/tmp/work"})
	if !errors.Is(err, config.ErrTmpDirDeprecated) {
		t.Fatalf("Write() error = %v, want ErrTmpDirDeprecated", err)
	}
	mustNotExist(t, strings.TrimSuffix(input, ".json")+".docx")
}

func TestWrite_NoInput(t *testing.T) {
	err := NewWriter().Write(config.Options{})
	if !errors.Is(err, config.ErrNoInput) {
		t.Fatalf("Write() error = %v, want ErrNoInput", err)
	}
}

func TestWrite_MissingInput(t *testing.T) {
	input := filepath.Join(t.TempDir(), "absent.json")

	err := NewWriter().Write(config.Options{Input: input})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Write() error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	input := writeInput(t)

	err := NewWriter().Write(config.Options{Input: input, Format: "xlsx"})
	if !errors.Is(err, output.ErrUnknownFormat) {
		t.Fatalf("Write() error = %v, want ErrUnknownFormat", err)
	}
	mustNotExist(t, strings.TrimSuffix(input, ".json")+".xlsx")
}

func TestWrite_DestinationIsDirectory(t *testing.T) {
	input := writeInput(t)
	dest := filepath.Join(filepath.Dir(input), "outdir")
	if err := os.Mkdir(dest, 0o755); err != nil {
		t.Fatalf("make collision directory: %v", err)
	}

	err := NewWriter().Write(config.Options{Input: input, SaveAs: dest, Format: "csv"})
	if err == nil {
		t.Fatal("Write() onto a directory: expected error")
	}
	// Failure cleanup removes partial files only, never a colliding directory.
	info, statErr := os.Stat(dest)
	if statErr != nil || !info.IsDir() {
		t.Fatalf("collision directory gone after failed write (stat: %v)", statErr)
	}
}
