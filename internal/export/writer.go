// Package export orchestrates one transcript conversion: it resolves the
// requested format and destination, runs the pipeline, and writes the report.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"speech-transcript-export/internal/chart"
	"speech-transcript-export/internal/config"
	"speech-transcript-export/internal/logging"
	"speech-transcript-export/internal/models"
	"speech-transcript-export/internal/output"
	"speech-transcript-export/internal/stats"
	"speech-transcript-export/internal/transcript"
)

// DefaultFormat is used when neither an explicit format nor a recognizable
// save-as extension selects one.
const DefaultFormat = output.FormatDocx

// Writer runs transcript conversions. It holds no per-call state; one Writer
// may serve any number of Write calls.
type Writer struct {
	log zerolog.Logger
}

// NewWriter creates a conversion writer.
func NewWriter() *Writer {
	return &Writer{log: logging.WithComponent("export")}
}

// Write converts one transcription job result according to opts. The
// pipeline runs each stage to completion before the next: load, decode,
// aggregate, chart, encode. Input and configuration errors are fatal and
// leave no output behind; item-level defects are logged and skipped.
func (w *Writer) Write(opts config.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	format, err := w.resolveFormat(opts)
	if err != nil {
		return err
	}
	dest := resolveDestination(opts, format)
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	raw, err := transcript.Load(opts.Input)
	if err != nil {
		return err
	}
	log := w.log.With().Str("input", opts.Input).Str("job", raw.JobName).Logger()

	table := transcript.Decode(raw)
	for _, warning := range table.Warnings {
		log.Warn().
			Int("index", warning.Index).
			Str("reason", warning.Reason).
			Msg("transcript entry skipped")
	}

	summary := stats.Aggregate(table)

	// The chart always renders next to the output; only the document format
	// embeds it, the rest leave it alongside as a by-product.
	chartPath, err := chart.Render(summary, filepath.Dir(dest))
	if err != nil {
		return err
	}

	encoder, err := output.For(format)
	if err != nil {
		return err
	}
	doc := output.Document{
		Table:     table,
		Stats:     summary,
		ChartPath: chartPath,
		Title:     title(raw, opts.Input),
	}
	if err := encoder.Encode(doc, dest); err != nil {
		w.discard(dest)
		return fmt.Errorf("encode %s: %w", format, err)
	}

	log.Info().
		Str("format", string(format)).
		Str("output", dest).
		Int("rows", len(table.Rows)).
		Int("words", summary.TotalWords).
		Msg("transcript exported")
	return nil
}

// resolveFormat picks the output format: an explicit option wins, then a
// recognized save-as extension, then the default.
func (w *Writer) resolveFormat(opts config.Options) (output.Format, error) {
	if opts.Format != "" {
		return output.ParseFormat(opts.Format)
	}
	if opts.SaveAs != "" {
		if format, ok := output.FormatFromPath(opts.SaveAs); ok {
			return format, nil
		}
		w.log.Debug().
			Str("saveAs", opts.SaveAs).
			Str("format", string(DefaultFormat)).
			Msg("save-as extension not recognized, falling back to default format")
	}
	return DefaultFormat, nil
}

// resolveDestination picks the output path: the explicit save-as path if
// given, else the input path with its extension swapped for the format's
// canonical one.
func resolveDestination(opts config.Options, format output.Format) string {
	if opts.SaveAs != "" {
		return opts.SaveAs
	}
	base := strings.TrimSuffix(opts.Input, filepath.Ext(opts.Input))
	return base + format.Extension()
}

// title names the report after the transcription job, falling back to the
// input file's stem.
func title(raw models.RawTranscript, input string) string {
	if raw.JobName != "" {
		return raw.JobName
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// discard removes a destination left behind by a failed encode so a partial
// file never passes as complete output. Anything other than a regular file
// (say, a directory the destination collided with) is left untouched.
func (w *Writer) discard(dest string) {
	info, err := os.Stat(dest)
	if err != nil || !info.Mode().IsRegular() {
		return
	}
	if err := os.Remove(dest); err != nil {
		w.log.Error().Err(err).Str("output", dest).Msg("could not remove partial output")
	}
}
