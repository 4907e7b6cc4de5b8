package models

// BucketKeys lists the confidence bucket labels in descending order, the
// order the docx report prints them. "9.8" covers the closed range
// [0.98, 1.0]; "9" covers [0.9, 0.98); each remaining key d covers the
// half-open decile [d/10, (d+1)/10).
var BucketKeys = [...]string{"9.8", "9", "8", "7", "6", "5", "4", "3", "2", "1", "0"}

// PercentileKeys lists the percentile labels in ascending order. A word with
// confidence c >= 0.9 is counted under floor(c*100), clamped to 99.
var PercentileKeys = [...]string{"90", "91", "92", "93", "94", "95", "96", "97", "98", "99"}

// Bucket is one confidence bucket's tally: how many words landed in it and
// what share of all scored words that is.
type Bucket struct {
	Count      int
	Percentage float64
}

// ConfidenceStats is the aggregate confidence picture for one transcript.
// Every scored word is counted in exactly one entry of Buckets; words at or
// above 0.9 are additionally counted in Percentiles.
type ConfidenceStats struct {
	// Timestamps holds one mark per scored word in source order, the raw
	// confidence time series of the transcript.
	Timestamps []WordMark
	// Buckets maps each key of BucketKeys to its tally.
	Buckets map[string]Bucket
	// Percentiles maps each key of PercentileKeys to its tally.
	Percentiles map[string]Bucket
	// TotalWords is the number of scored words, the denominator behind every
	// Percentage.
	TotalWords int
}
