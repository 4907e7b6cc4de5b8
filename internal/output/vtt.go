package output

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"speech-transcript-export/internal/models"
	"speech-transcript-export/internal/timefmt"
)

// maxCaptionCols is the widest a displayed caption line may be; wrapping
// happens at word boundaries only.
const maxCaptionCols = 80

// vttEncoder writes the table as WebVTT captions, one cue per utterance row.
// A cue runs from its row's start to the next row's start; the final cue ends
// when its own last word does. Cue identifiers (sequential, 1-based) are
// emitted only when the transcript carries speaker labels.
type vttEncoder struct{}

func (vttEncoder) Encode(doc Document, path string) error {
	rows := doc.Table.Rows
	identified := speakered(rows)

	var b strings.Builder
	b.WriteString("WEBVTT\n\n")

	for i, row := range rows {
		start, err := timefmt.Seconds(row.StartTime)
		if err != nil {
			return fmt.Errorf("caption %d start: %w", i+1, err)
		}
		var end float64
		if i+1 < len(rows) {
			end, err = timefmt.Seconds(rows[i+1].StartTime)
			if err != nil {
				return fmt.Errorf("caption %d end: %w", i+1, err)
			}
		} else {
			end = finalCueEnd(row, start)
		}

		if identified {
			b.WriteString(strconv.Itoa(i + 1))
			b.WriteByte('\n')
		}
		b.WriteString(timefmt.FormatSecondsMillis(start))
		b.WriteString(" --> ")
		b.WriteString(timefmt.FormatSecondsMillis(end))
		b.WriteByte('\n')
		for _, line := range wrapWords(row.Content, maxCaptionCols) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write vtt: %w", err)
	}
	return nil
}

// finalCueEnd is the last word's end time, or one second past the cue start
// when the row carries no usable end.
func finalCueEnd(row models.UtteranceRow, start float64) float64 {
	end, err := timefmt.Seconds(row.EndTime)
	if err != nil || end <= start {
		return start + 1
	}
	return end
}

func speakered(rows []models.UtteranceRow) bool {
	for _, row := range rows {
		if row.Speaker != "" {
			return true
		}
	}
	return false
}

// wrapWords splits text into lines of at most width display columns, breaking
// at word boundaries only. A single word longer than width keeps its own
// overlong line rather than being split.
func wrapWords(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	cols := utf8.RuneCountInString(line)
	for _, word := range words[1:] {
		wordCols := utf8.RuneCountInString(word)
		if cols+1+wordCols > width {
			lines = append(lines, line)
			line = word
			cols = wordCols
			continue
		}
		line += " " + word
		cols += 1 + wordCols
	}
	return append(lines, line)
}
