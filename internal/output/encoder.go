// Package output renders the canonical utterance table into the supported
// report formats.
package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"speech-transcript-export/internal/models"
)

// Format identifies one supported report format.
type Format string

const (
	FormatDocx   Format = "docx"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
	FormatVTT    Format = "vtt"
)

// ErrUnknownFormat marks a requested format outside the supported set.
var ErrUnknownFormat = errors.New("output: unknown format")

// ParseFormat maps a format name onto its Format, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatDocx, FormatCSV, FormatSQLite, FormatVTT:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Extension is the format's canonical file extension, dot included.
func (f Format) Extension() string {
	return "." + string(f)
}

// FormatFromPath infers a format from a destination path's extension. The
// second return reports whether the extension maps to a supported format;
// ".db" is accepted as an alias for the sqlite format.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return FormatDocx, true
	case ".csv":
		return FormatCSV, true
	case ".sqlite", ".db":
		return FormatSQLite, true
	case ".vtt":
		return FormatVTT, true
	}
	return "", false
}

// Document carries everything an encoder may need: the canonical table plus,
// for the document format, the statistics summary, the rendered chart, and a
// display title.
type Document struct {
	Table     models.Table
	Stats     models.ConfidenceStats
	ChartPath string
	Title     string
}

// Encoder writes one report format. An implementation either produces a
// complete file at path or returns an error; the orchestrator removes the
// destination on failure so a partial file never passes as output.
type Encoder interface {
	Encode(doc Document, path string) error
}

// For returns the encoder implementing f. The format set is closed; anything
// else fails with ErrUnknownFormat.
func For(f Format) (Encoder, error) {
	switch f {
	case FormatDocx:
		return docxEncoder{}, nil
	case FormatCSV:
		return csvEncoder{}, nil
	case FormatSQLite:
		return sqliteEncoder{}, nil
	case FormatVTT:
		return vttEncoder{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
