package output

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"time"

	"speech-transcript-export/internal/models"
	"speech-transcript-export/internal/timefmt"
)

// Chart dimensions inside the document, in EMU (914400 per inch). Width is
// fixed; height keeps the 900x500 pixel chart's aspect ratio.
const (
	chartWidthEMU  = 5270400
	chartHeightEMU = chartWidthEMU * 500 / 900
)

// docxEncoder writes the full report document: a title region, the 12-row
// confidence statistics table, the chart image, and the transcript table.
type docxEncoder struct{}

func (docxEncoder) Encode(doc Document, path string) error {
	chartBytes, err := os.ReadFile(doc.ChartPath)
	if err != nil {
		return fmt.Errorf("read chart image: %w", err)
	}

	document := newWordDocument(reportBlocks(doc))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	parts := []struct {
		name    string
		content any
	}{
		{partContentTypes, packageContentTypes()},
		{partRootRels, rootRelationships()},
		{partDocument, document},
		{partDocumentRels, documentRelationships()},
		{partStyles, documentStyles()},
	}
	for _, part := range parts {
		if err := writeXMLPart(zw, part.name, part.content); err != nil {
			return fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	w, err := zw.Create(partChartImage)
	if err != nil {
		return fmt.Errorf("write %s: %w", partChartImage, err)
	}
	if _, err := w.Write(chartBytes); err != nil {
		return fmt.Errorf("write %s: %w", partChartImage, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish document: %w", err)
	}
	return f.Close()
}

func writeXMLPart(zw *zip.Writer, name string, content any) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	data, err := xml.Marshal(content)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// reportBlocks lays out the document body. The chart paragraph must stay the
// seventh paragraph (index 6); tables do not count as paragraphs.
func reportBlocks(doc Document) []any {
	blocks := []any{
		styledParagraph("Heading1", "Transcription of "+doc.Title),
		textParagraph("Report generated from an automatic speech recognition transcription job."),
		textParagraph(time.Now().Format("Document produced on Monday 02 January 2006 at 15:04:05.")),
		textParagraph(""),
		textParagraph("Confidence shown per utterance is the lowest word confidence within it."),
		styledParagraph("Heading2", "Confidence"),
		newTable(statsRows(doc.Stats)),
		imageParagraph(chartRelID, "chart.png", chartWidthEMU, chartHeightEMU),
		styledParagraph("Heading2", "Transcript"),
		newTable(transcriptRows(doc.Table)),
	}
	return blocks
}

// statsRows renders the statistics table: a header plus one row per bucket in
// descending confidence order, twelve rows in all.
func statsRows(stats models.ConfidenceStats) [][]string {
	rows := [][]string{{"Confidence", "Count", "Percentage"}}
	for _, key := range models.BucketKeys {
		b := stats.Buckets[key]
		rows = append(rows, []string{
			bucketRange(key),
			strconv.Itoa(b.Count),
			fmt.Sprintf("%.2f%%", b.Percentage),
		})
	}
	return rows
}

// bucketRange is the human-readable confidence range for a bucket key.
func bucketRange(key string) string {
	switch key {
	case "9.8":
		return "98% - 100%"
	case "9":
		return "90% - 97%"
	}
	d, err := strconv.Atoi(key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%d%% - %d%%", d*10, d*10+9)
}

func transcriptRows(t models.Table) [][]string {
	rows := [][]string{{"Time", "Speaker", "Content"}}
	for _, row := range t.Rows {
		ts, err := timefmt.FormatTimestamp(row.StartTime)
		if err != nil {
			// Decoded rows carry validated start times; an unformattable one
			// is rendered raw rather than dropped.
			ts = row.StartTime
		}
		rows = append(rows, []string{ts, row.Speaker, row.Content})
	}
	return rows
}
