// Package chart renders the confidence distribution as a PNG bar chart for
// embedding in the document report.
package chart

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"speech-transcript-export/internal/models"
)

// FileName is the fixed name of the rendered chart inside the output
// directory. An existing file of that name is overwritten.
const FileName = "chart.png"

const (
	width  = 900
	height = 500

	marginLeft   = 70.0
	marginRight  = 30.0
	marginTop    = 60.0
	marginBottom = 70.0
)

// Render draws the confidence buckets as a bar chart, lowest bucket first on
// the x axis and word counts on the y axis, and writes it as chart.png inside
// dir. It returns the written path.
func Render(stats models.ConfidenceStats, dir string) (string, error) {
	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return "", fmt.Errorf("parse chart font: %w", err)
	}
	titleFace := truetype.NewFace(fnt, &truetype.Options{Size: 20, DPI: 72, Hinting: font.HintingNone})
	labelFace := truetype.NewFace(fnt, &truetype.Options{Size: 14, DPI: 72, Hinting: font.HintingNone})

	// Bars ascend from the lowest bucket, so walk the keys backwards.
	keys := make([]string, 0, len(models.BucketKeys))
	for i := len(models.BucketKeys) - 1; i >= 0; i-- {
		keys = append(keys, models.BucketKeys[i])
	}
	maxCount := 1
	for _, key := range keys {
		if c := stats.Buckets[key].Count; c > maxCount {
			maxCount = c
		}
	}

	plotW := float64(width) - marginLeft - marginRight
	plotH := float64(height) - marginTop - marginBottom
	slot := plotW / float64(len(keys))
	baseline := float64(height) - marginBottom

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetFontFace(titleFace)
	dc.SetRGB(0.15, 0.15, 0.15)
	dc.DrawStringAnchored("Confidence distribution", float64(width)/2, marginTop/2, 0.5, 0.5)

	dc.SetFontFace(labelFace)
	for i, key := range keys {
		bucket := stats.Buckets[key]
		barH := plotH * float64(bucket.Count) / float64(maxCount)
		x := marginLeft + float64(i)*slot + slot*0.15
		barW := slot * 0.7

		dc.SetRGB(0.27, 0.45, 0.77)
		dc.DrawRectangle(x, baseline-barH, barW, barH)
		dc.Fill()

		dc.SetRGB(0.15, 0.15, 0.15)
		dc.DrawStringAnchored(bucketLabel(key), x+barW/2, baseline+16, 0.5, 0.5)
		dc.DrawStringAnchored(strconv.Itoa(bucket.Count), x+barW/2, baseline-barH-12, 0.5, 0.5)
	}

	dc.SetRGB(0.15, 0.15, 0.15)
	dc.SetLineWidth(1.5)
	dc.DrawLine(marginLeft, marginTop, marginLeft, baseline)
	dc.DrawLine(marginLeft, baseline, float64(width)-marginRight, baseline)
	dc.Stroke()

	dc.DrawStringAnchored("confidence bucket (%)", marginLeft+plotW/2, float64(height)-20, 0.5, 0.5)
	dc.DrawStringAnchored("words", marginLeft, marginTop-14, 0.5, 0.5)

	path := filepath.Join(dir, FileName)
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("write chart: %w", err)
	}
	return path, nil
}

// bucketLabel is the bucket's lower bound in percent, the x tick text.
func bucketLabel(key string) string {
	switch key {
	case "9.8":
		return "98+"
	case "9":
		return "90"
	default:
		return key + "0"
	}
}
