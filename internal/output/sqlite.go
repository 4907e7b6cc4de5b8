package output

import (
	"errors"
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"speech-transcript-export/internal/timefmt"
)

// transcriptRecord is one utterance row as stored in the database.
type transcriptRecord struct {
	Time       string  `gorm:"column:time"`
	Speaker    string  `gorm:"column:speaker"`
	Content    string  `gorm:"column:content"`
	Confidence float64 `gorm:"column:confidence"`
}

func (transcriptRecord) TableName() string { return "transcript" }

// sqliteEncoder writes the table into a single-table sqlite database named
// transcript. An existing destination is replaced wholesale so a previous
// run's rows never show through.
type sqliteEncoder struct{}

func (sqliteEncoder) Encode(doc Document, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("replace database: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&transcriptRecord{}); err != nil {
		return fmt.Errorf("migrate transcript table: %w", err)
	}

	records := make([]transcriptRecord, 0, len(doc.Table.Rows))
	for i, row := range doc.Table.Rows {
		ts, err := timefmt.FormatTimestamp(row.StartTime)
		if err != nil {
			return fmt.Errorf("database row %d: %w", i, err)
		}
		records = append(records, transcriptRecord{
			Time:       ts,
			Speaker:    row.Speaker,
			Content:    row.Content,
			Confidence: row.Confidence,
		})
	}
	if len(records) == 0 {
		// gorm rejects empty batches; an empty transcript is just an empty table.
		return nil
	}
	if err := db.Create(&records).Error; err != nil {
		return fmt.Errorf("insert transcript rows: %w", err)
	}
	return nil
}
