// Transcript Viewer - terminal display for converted transcripts
// Opens a sqlite database produced by the exporter and prints its rows
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TranscriptRow mirrors the transcript table written by the exporter.
type TranscriptRow struct {
	Time       string
	Speaker    string
	Content    string
	Confidence float64
}

// TableName keeps gorm on the exporter's table.
func (TranscriptRow) TableName() string { return "transcript" }

func main() {
	dbPath := flag.String("db", "", "path to a transcript sqlite database (may also be passed as the first argument)")
	speaker := flag.String("speaker", "", "only show rows for this speaker label")
	below := flag.Float64("below", 1.01, "only show rows with confidence below this value")
	flag.Parse()

	if *dbPath == "" && flag.NArg() > 0 {
		*dbPath = flag.Arg(0)
	}
	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: transcript-viewer [-speaker spk_0] [-below 0.9] <transcript.sqlite>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if _, err := os.Stat(*dbPath); err != nil {
		log.Fatalf("Cannot open database: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *dbPath, err)
	}

	var rows []TranscriptRow
	query := db.Order("rowid")
	if *speaker != "" {
		query = query.Where("speaker = ?", *speaker)
	}
	if *below <= 1.0 {
		query = query.Where("confidence < ?", *below)
	}
	if err := query.Find(&rows).Error; err != nil {
		log.Fatalf("Failed to read transcript rows: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tSPEAKER\tCONF\tCONTENT")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", row.Time, row.Speaker, row.Confidence, row.Content)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to print transcript: %v", err)
	}

	log.Printf("%d rows shown from %s", len(rows), *dbPath)
}
