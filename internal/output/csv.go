package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"speech-transcript-export/internal/timefmt"
)

// csvEncoder writes the table as delimited text: one header line plus one
// record per utterance row.
type csvEncoder struct{}

func (csvEncoder) Encode(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Time", "Speaker", "Content", "Confidence"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range doc.Table.Rows {
		ts, err := timefmt.FormatTimestamp(row.StartTime)
		if err != nil {
			return fmt.Errorf("csv row %d: %w", i, err)
		}
		record := []string{
			ts,
			row.Speaker,
			row.Content,
			strconv.FormatFloat(row.Confidence, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}
