package transcript

import (
	"reflect"
	"strings"
	"testing"

	"speech-transcript-export/internal/models"
)

func word(start, end, confidence, content string) models.Item {
	return models.Item{
		Type:      models.ItemTypePronunciation,
		StartTime: start,
		EndTime:   end,
		Alternatives: []models.Alternative{
			{Confidence: confidence, Content: content},
		},
	}
}

func punct(content string) models.Item {
	return models.Item{
		Type: models.ItemTypePunctuation,
		Alternatives: []models.Alternative{
			{Confidence: "0.0", Content: content},
		},
	}
}

func flatTranscript(items ...models.Item) models.RawTranscript {
	return models.RawTranscript{Results: &models.Results{Items: items}}
}

func segmentedTranscript(segments []models.Segment, items ...models.Item) models.RawTranscript {
	return models.RawTranscript{Results: &models.Results{
		Items:         items,
		SpeakerLabels: &models.SpeakerLabels{Segments: segments},
	}}
}

func TestDecode_FlatSingleRow(t *testing.T) {
	raw := flatTranscript(
		word("0.04", "0.5", "0.99", "hello"),
		word("0.6", "1.1", "0.75", "world"),
		punct("."),
	)

	table := Decode(raw)

	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	row := table.Rows[0]
	if row.Content != "hello world." {
		t.Errorf("content = %q, want %q", row.Content, "hello world.")
	}
	if row.Speaker != "" {
		t.Errorf("speaker = %q, want empty", row.Speaker)
	}
	if row.StartTime != "0.04" {
		t.Errorf("start time = %q, want %q", row.StartTime, "0.04")
	}
	if row.EndTime != "1.1" {
		t.Errorf("end time = %q, want %q", row.EndTime, "1.1")
	}
	if row.Confidence != 0.75 {
		t.Errorf("confidence = %v, want 0.75 (the minimum)", row.Confidence)
	}
	if len(table.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", table.Warnings)
	}
}

func TestDecode_HighestConfidenceAlternativeWins(t *testing.T) {
	item := models.Item{
		Type:      models.ItemTypePronunciation,
		StartTime: "1.0",
		EndTime:   "1.5",
		Alternatives: []models.Alternative{
			{Confidence: "0.31", Content: "flour"},
			{Confidence: "0.69", Content: "flower"},
		},
	}

	table := Decode(flatTranscript(item))

	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	if got := table.Rows[0].Content; got != "flower" {
		t.Errorf("content = %q, want the higher-confidence alternative %q", got, "flower")
	}
	if got := table.Rows[0].Confidence; got != 0.69 {
		t.Errorf("confidence = %v, want 0.69", got)
	}
}

func TestDecode_SingleSegmentScenario(t *testing.T) {
	raw := segmentedTranscript(
		[]models.Segment{
			{SpeakerLabel: "spk_0", StartTime: "0.0", EndTime: "2.0"},
		},
		word("0.0", "0.8", "0.99", "hello"),
		word("0.9", "1.6", "0.75", "world"),
		punct("."),
	)

	table := Decode(raw)

	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	row := table.Rows[0]
	if row.Speaker != "spk_0" {
		t.Errorf("speaker = %q, want spk_0", row.Speaker)
	}
	if row.Content != "hello world." {
		t.Errorf("content = %q, want %q", row.Content, "hello world.")
	}
	if row.Confidence != 0.75 {
		t.Errorf("confidence = %v, want 0.75", row.Confidence)
	}
	if row.StartTime != "0.0" {
		t.Errorf("start time = %q, want 0.0", row.StartTime)
	}
}

func TestDecode_OneRowPerSegmentInOrder(t *testing.T) {
	raw := segmentedTranscript(
		[]models.Segment{
			{SpeakerLabel: "spk_0", StartTime: "0.0", EndTime: "2.0"},
			{SpeakerLabel: "spk_1", StartTime: "2.5", EndTime: "4.0"},
			{SpeakerLabel: "spk_0", StartTime: "4.5", EndTime: "6.0"},
		},
		word("0.1", "0.9", "0.98", "good"),
		word("1.0", "1.9", "0.97", "morning"),
		punct("."),
		word("2.6", "3.2", "0.92", "morning"),
		punct("!"),
		word("4.6", "5.1", "0.88", "shall"),
		word("5.2", "5.9", "0.91", "we"),
	)

	table := Decode(raw)

	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.Rows))
	}
	want := []struct {
		speaker, content, start string
		confidence              float64
	}{
		{"spk_0", "good morning.", "0.1", 0.97},
		{"spk_1", "morning!", "2.6", 0.92},
		{"spk_0", "shall we", "4.6", 0.88},
	}
	for i, w := range want {
		row := table.Rows[i]
		if row.Speaker != w.speaker || row.Content != w.content || row.StartTime != w.start || row.Confidence != w.confidence {
			t.Errorf("row %d = %+v, want %+v", i, row, w)
		}
	}
	if len(table.Marks) != 5 {
		t.Errorf("expected 5 word marks, got %d", len(table.Marks))
	}
	if len(table.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", table.Warnings)
	}
}

func TestDecode_EmptyTranscript(t *testing.T) {
	table := Decode(flatTranscript())

	if !table.Empty() {
		t.Fatalf("expected empty table, got %d rows", len(table.Rows))
	}
	if len(table.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", table.Warnings)
	}
}

func TestDecode_MissingResults(t *testing.T) {
	table := Decode(models.RawTranscript{})

	if !table.Empty() || len(table.Marks) != 0 || len(table.Warnings) != 0 {
		t.Fatalf("expected zero table, got %+v", table)
	}
}

func TestDecode_RecoversFromDefectiveItems(t *testing.T) {
	tests := []struct {
		name       string
		raw        models.RawTranscript
		wantRows   int
		wantReason string
	}{
		{
			name: "word without alternatives",
			raw: flatTranscript(
				models.Item{Type: models.ItemTypePronunciation, StartTime: "0.1"},
				word("0.5", "0.9", "0.9", "kept"),
			),
			wantRows:   1,
			wantReason: "no scored alternatives",
		},
		{
			name: "word with unparsable start time",
			raw: flatTranscript(
				word("soon", "0.4", "0.9", "dropped"),
				word("0.5", "0.9", "0.9", "kept"),
			),
			wantRows:   1,
			wantReason: "not a timestamp",
		},
		{
			name: "word with unparsable confidence",
			raw: flatTranscript(
				models.Item{
					Type:         models.ItemTypePronunciation,
					StartTime:    "0.1",
					Alternatives: []models.Alternative{{Confidence: "high", Content: "dropped"}},
				},
				word("0.5", "0.9", "0.9", "kept"),
			),
			wantRows:   1,
			wantReason: "no scored alternatives",
		},
		{
			name:       "leading punctuation",
			raw:        flatTranscript(punct("."), word("0.5", "0.9", "0.9", "kept")),
			wantRows:   1,
			wantReason: "no preceding word",
		},
		{
			name: "unknown item type",
			raw: flatTranscript(
				models.Item{Type: "noise", StartTime: "0.1"},
				word("0.5", "0.9", "0.9", "kept"),
			),
			wantRows:   1,
			wantReason: "unknown item type",
		},
		{
			name: "segment matching no items",
			raw: segmentedTranscript(
				[]models.Segment{
					{SpeakerLabel: "spk_0", StartTime: "0.0", EndTime: "1.0"},
					{SpeakerLabel: "spk_1", StartTime: "5.0", EndTime: "6.0"},
				},
				word("0.2", "0.8", "0.9", "kept"),
			),
			wantRows:   1,
			wantReason: "yields no content",
		},
		{
			name: "segment with unparsable time range",
			raw: segmentedTranscript(
				[]models.Segment{
					{SpeakerLabel: "spk_0", StartTime: "zero", EndTime: "1.0"},
					{SpeakerLabel: "spk_1", StartTime: "0.0", EndTime: "1.0"},
				},
				word("0.2", "0.8", "0.9", "kept"),
			),
			wantRows:   1,
			wantReason: "invalid time range",
		},
		{
			name: "word in a gap between segments",
			raw: segmentedTranscript(
				[]models.Segment{
					{SpeakerLabel: "spk_0", StartTime: "0.0", EndTime: "1.0"},
					{SpeakerLabel: "spk_1", StartTime: "3.0", EndTime: "4.0"},
				},
				word("0.2", "0.8", "0.9", "kept"),
				word("1.5", "2.0", "0.9", "orphan"),
				word("3.2", "3.8", "0.9", "kept"),
			),
			wantRows:   2,
			wantReason: "not covered by any speaker segment",
		},
		{
			name: "word after the last segment",
			raw: segmentedTranscript(
				[]models.Segment{
					{SpeakerLabel: "spk_0", StartTime: "0.0", EndTime: "1.0"},
				},
				word("0.2", "0.8", "0.9", "kept"),
				word("7.0", "7.5", "0.9", "orphan"),
			),
			wantRows:   1,
			wantReason: "not covered by any speaker segment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Decode(tt.raw)
			if len(table.Rows) != tt.wantRows {
				t.Fatalf("rows = %d, want %d (warnings: %v)", len(table.Rows), tt.wantRows, table.Warnings)
			}
			for _, row := range table.Rows {
				if row.Content == "" {
					t.Errorf("row with empty content: %+v", row)
				}
			}
			found := false
			for _, w := range table.Warnings {
				if strings.Contains(w.Reason, tt.wantReason) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("warnings %v do not mention %q", table.Warnings, tt.wantReason)
			}
		})
	}
}

func TestDecode_UncoveredWordStillCountsForStats(t *testing.T) {
	raw := segmentedTranscript(
		[]models.Segment{
			{SpeakerLabel: "spk_0", StartTime: "0.0", EndTime: "1.0"},
		},
		word("0.2", "0.8", "0.9", "covered"),
		word("2.0", "2.5", "0.4", "orphan"),
	)

	table := Decode(raw)

	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	if len(table.Marks) != 2 {
		t.Fatalf("expected 2 marks (orphan word still scored), got %d", len(table.Marks))
	}
	if table.Marks[1].Confidence != 0.4 {
		t.Errorf("orphan mark confidence = %v, want 0.4", table.Marks[1].Confidence)
	}
}

func TestDecode_MarksInSourceOrder(t *testing.T) {
	raw := flatTranscript(
		word("0.0", "0.4", "0.5", "a"),
		word("0.5", "0.9", "0.6", "b"),
		punct(","),
		word("1.0", "1.4", "0.7", "c"),
	)

	table := Decode(raw)

	if len(table.Marks) != 3 {
		t.Fatalf("expected 3 marks, got %d", len(table.Marks))
	}
	for i := 1; i < len(table.Marks); i++ {
		if table.Marks[i].Time < table.Marks[i-1].Time {
			t.Errorf("marks out of source order at %d: %v", i, table.Marks)
		}
	}
}

func TestDecode_Idempotent(t *testing.T) {
	raw := segmentedTranscript(
		[]models.Segment{
			{SpeakerLabel: "spk_0", StartTime: "0.0", EndTime: "2.0"},
			{SpeakerLabel: "spk_1", StartTime: "2.5", EndTime: "4.0"},
		},
		word("0.1", "0.9", "0.98", "hello"),
		punct(","),
		word("1.0", "1.9", "0.97", "there"),
		word("2.6", "3.2", "0.92", "hi"),
		punct("!"),
	)

	first := Decode(raw)
	second := Decode(raw)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("decode is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
