package transcript

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"speech-transcript-export/internal/models"
	"speech-transcript-export/internal/timefmt"
)

// assembler builds one utterance row from a run of consecutive items. Words
// are joined with single spaces, punctuation glues to the preceding word, and
// the row confidence is the minimum over the contributing words so that one
// uncertain word is never hidden by averaging.
type assembler struct {
	speaker    string
	startTime  string
	endTime    string
	text       strings.Builder
	confidence float64
	scored     bool
}

func newAssembler(speaker string) *assembler {
	return &assembler{speaker: speaker}
}

func (a *assembler) addWord(content string, confidence float64, startTime, endTime string) {
	if a.text.Len() > 0 {
		a.text.WriteByte(' ')
	}
	a.text.WriteString(content)
	if a.startTime == "" {
		a.startTime = startTime
	}
	if endTime != "" {
		a.endTime = endTime
	}
	if !a.scored || confidence < a.confidence {
		a.confidence = confidence
		a.scored = true
	}
}

// addPunctuation glues text to the last word, reporting whether the row had
// one to glue to.
func (a *assembler) addPunctuation(text string) bool {
	if a.text.Len() == 0 {
		return false
	}
	a.text.WriteString(text)
	return true
}

func (a *assembler) empty() bool {
	return a.text.Len() == 0
}

func (a *assembler) row() models.UtteranceRow {
	return models.UtteranceRow{
		StartTime:  a.startTime,
		EndTime:    a.endTime,
		Speaker:    a.speaker,
		Content:    a.text.String(),
		Confidence: a.confidence,
	}
}

// tableBuilder accumulates rows, word marks, and warnings across one decode.
type tableBuilder struct {
	rows     []models.UtteranceRow
	marks    []models.WordMark
	warnings []models.Warning
}

func (b *tableBuilder) warnf(index int, format string, args ...any) {
	b.warnings = append(b.warnings, models.Warning{
		Index:  index,
		Reason: fmt.Sprintf(format, args...),
	})
}

// scoreWord validates one word item and, when valid, records its mark for the
// statistics feed. It returns the chosen alternative's content and confidence.
func (b *tableBuilder) scoreWord(index int, item models.Item) (string, float64, bool) {
	alt, conf, ok := bestAlternative(item.Alternatives)
	if !ok {
		b.warnf(index, "word has no scored alternatives")
		return "", 0, false
	}
	start, err := timefmt.Seconds(item.StartTime)
	if err != nil {
		b.warnf(index, "word start time %q is not a timestamp", item.StartTime)
		return "", 0, false
	}
	b.marks = append(b.marks, models.WordMark{Time: start, Confidence: conf})
	return alt.Content, conf, true
}

// consume feeds one item into the row under assembly. Defective items are
// skipped with a warning.
func (b *tableBuilder) consume(a *assembler, index int, item models.Item) {
	switch item.Type {
	case models.ItemTypePronunciation:
		content, conf, ok := b.scoreWord(index, item)
		if !ok {
			return
		}
		a.addWord(content, conf, item.StartTime, item.EndTime)
	case models.ItemTypePunctuation:
		if len(item.Alternatives) == 0 {
			b.warnf(index, "punctuation has no alternatives")
			return
		}
		if !a.addPunctuation(item.Alternatives[0].Content) {
			b.warnf(index, "punctuation with no preceding word")
		}
	default:
		b.warnf(index, "unknown item type %q", item.Type)
	}
}

// flush appends the assembled row when it holds any content.
func (b *tableBuilder) flush(a *assembler) bool {
	if a.empty() {
		return false
	}
	b.rows = append(b.rows, a.row())
	return true
}

func (b *tableBuilder) table() models.Table {
	return models.Table{Rows: b.rows, Marks: b.marks, Warnings: b.warnings}
}

// bestAlternative picks the highest-confidence alternative; earlier entries
// win ties. Alternatives without a usable confidence value never win.
func bestAlternative(alts []models.Alternative) (models.Alternative, float64, bool) {
	var (
		best     models.Alternative
		bestConf float64
		found    bool
	)
	for _, alt := range alts {
		conf, err := strconv.ParseFloat(alt.Confidence, 64)
		if err != nil || math.IsNaN(conf) || math.IsInf(conf, 0) || conf < 0 {
			continue
		}
		if !found || conf > bestConf {
			best, bestConf, found = alt, conf, true
		}
	}
	return best, bestConf, found
}
