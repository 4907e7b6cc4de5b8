// Package stats computes the word-level confidence distribution behind the
// report's statistics table and chart.
package stats

import (
	"strconv"

	"speech-transcript-export/internal/models"
)

// Aggregate tallies the table's word marks into the confidence buckets. Every
// mark lands in exactly one bucket; marks at or above 0.9 are additionally
// tallied per percentile. All bucket keys are present in the result even when
// empty, so encoders can iterate them without existence checks.
func Aggregate(table models.Table) models.ConfidenceStats {
	stats := models.ConfidenceStats{
		Timestamps:  table.Marks,
		Buckets:     make(map[string]models.Bucket, len(models.BucketKeys)),
		Percentiles: make(map[string]models.Bucket, len(models.PercentileKeys)),
		TotalWords:  len(table.Marks),
	}
	for _, key := range models.BucketKeys {
		stats.Buckets[key] = models.Bucket{}
	}
	for _, key := range models.PercentileKeys {
		stats.Percentiles[key] = models.Bucket{}
	}

	for _, mark := range table.Marks {
		key := bucketKey(mark.Confidence)
		b := stats.Buckets[key]
		b.Count++
		stats.Buckets[key] = b

		if mark.Confidence >= 0.9 {
			key = percentileKey(mark.Confidence)
			p := stats.Percentiles[key]
			p.Count++
			stats.Percentiles[key] = p
		}
	}

	if stats.TotalWords == 0 {
		return stats
	}
	total := float64(stats.TotalWords)
	for key, b := range stats.Buckets {
		b.Percentage = float64(b.Count) / total * 100
		stats.Buckets[key] = b
	}
	for key, p := range stats.Percentiles {
		p.Percentage = float64(p.Count) / total * 100
		stats.Percentiles[key] = p
	}
	return stats
}

// bucketKey places one confidence value. The top of the scale is split finer:
// [0.98, 1.0] is its own bucket, [0.9, 0.98) sits under "9", and everything
// below falls into plain deciles.
func bucketKey(c float64) string {
	switch {
	case c >= 0.98:
		return "9.8"
	case c >= 0.9:
		return "9"
	case c >= 0.8:
		return "8"
	case c >= 0.7:
		return "7"
	case c >= 0.6:
		return "6"
	case c >= 0.5:
		return "5"
	case c >= 0.4:
		return "4"
	case c >= 0.3:
		return "3"
	case c >= 0.2:
		return "2"
	case c >= 0.1:
		return "1"
	default:
		return "0"
	}
}

// percentileKey is floor(c*100) clamped to the "90".."99" key range; callers
// guarantee c >= 0.9.
func percentileKey(c float64) string {
	p := int(c * 100)
	if p > 99 {
		p = 99
	}
	return strconv.Itoa(p)
}
