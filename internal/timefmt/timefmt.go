// Package timefmt renders the decimal-seconds timestamps carried by
// transcripts in the clock formats the report encoders emit.
package timefmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidTimestamp marks timestamp text that is not a finite, non-negative
// number of seconds.
var ErrInvalidTimestamp = errors.New("timefmt: invalid timestamp")

// Seconds parses a decimal-seconds timestamp. It rejects anything that is not
// a finite, non-negative number.
func Seconds(raw string) (float64, error) {
	sec, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
	}
	if math.IsNaN(sec) || math.IsInf(sec, 0) || sec < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
	}
	return sec, nil
}

// FormatTimestamp renders raw as zero-padded HH:MM:SS, truncating any
// fractional second. The hour field widens past two digits when needed.
func FormatTimestamp(raw string) (string, error) {
	sec, err := Seconds(raw)
	if err != nil {
		return "", err
	}
	total := int64(sec)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60), nil
}

// FormatSecondsMillis renders an already-validated seconds value as
// HH:MM:SS.mmm, rounding to the nearest millisecond.
func FormatSecondsMillis(sec float64) string {
	ms := int64(math.Round(sec * 1000))
	return fmt.Sprintf("%02d:%02d:%02d.%03d", ms/3600000, ms%3600000/60000, ms%60000/1000, ms%1000)
}
