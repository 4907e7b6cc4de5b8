package transcript

import "speech-transcript-export/internal/models"

// flatDecoder handles transcripts without speaker segmentation. A new row
// starts only on a speaker change and a flat transcript has no speakers, so
// every item lands in one row with an empty speaker label.
type flatDecoder struct{}

func (flatDecoder) decode(results *models.Results) models.Table {
	b := &tableBuilder{}
	a := newAssembler("")
	for i, item := range results.Items {
		b.consume(a, i, item)
	}
	b.flush(a)
	return b.table()
}
