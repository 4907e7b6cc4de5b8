package transcript

import (
	"speech-transcript-export/internal/models"
	"speech-transcript-export/internal/timefmt"
)

// segmentedDecoder handles speaker-labeled transcripts: one row per speaker
// segment, carrying the items whose start time falls inside the segment's
// time range. Segments and items both arrive in time order, so a single
// cursor walks the item list once across all segments.
type segmentedDecoder struct{}

func (segmentedDecoder) decode(results *models.Results) models.Table {
	b := &tableBuilder{}
	items := results.Items
	cursor := 0

	for si, seg := range results.SpeakerLabels.Segments {
		segStart, startErr := timefmt.Seconds(seg.StartTime)
		segEnd, endErr := timefmt.Seconds(seg.EndTime)
		if startErr != nil || endErr != nil {
			b.warnf(si, "speaker segment has invalid time range %q..%q", seg.StartTime, seg.EndTime)
			continue
		}

		a := newAssembler(seg.SpeakerLabel)
		for cursor < len(items) {
			item := items[cursor]
			if item.Type == models.ItemTypePronunciation {
				start, err := timefmt.Seconds(item.StartTime)
				if err != nil {
					b.warnf(cursor, "word start time %q is not a timestamp", item.StartTime)
					cursor++
					continue
				}
				if start > segEnd {
					// Belongs to a later segment.
					break
				}
				if start < segStart {
					// Fell in a gap between segments. Still counts toward the
					// statistics, just not toward any row.
					if _, _, ok := b.scoreWord(cursor, item); ok {
						b.warnf(cursor, "word at %s not covered by any speaker segment", item.StartTime)
					}
					cursor++
					continue
				}
			}
			b.consume(a, cursor, item)
			cursor++
		}
		if !b.flush(a) {
			b.warnf(si, "speaker segment %s yields no content", seg.SpeakerLabel)
		}
	}

	for ; cursor < len(items); cursor++ {
		item := items[cursor]
		if item.Type == models.ItemTypePronunciation {
			if _, _, ok := b.scoreWord(cursor, item); ok {
				b.warnf(cursor, "word at %s not covered by any speaker segment", item.StartTime)
			}
			continue
		}
		b.warnf(cursor, "item not covered by any speaker segment")
	}

	return b.table()
}
