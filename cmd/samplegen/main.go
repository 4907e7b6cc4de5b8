// samplegen writes a synthetic transcription job result for feeding the
// converter by hand.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"speech-transcript-export/internal/models"
)

var vocabulary = []string{
	"the", "quarterly", "numbers", "look", "solid", "we", "should", "ship",
	"before", "friday", "customer", "feedback", "points", "at", "latency",
	"first", "then", "capacity", "plan", "for", "launch", "review", "notes",
	"are", "in", "shared", "folder", "next", "sprint", "covers", "billing",
	"and", "reporting", "team", "agreed", "on", "rollout", "schedule",
}

func main() {
	out := flag.String("out", "sample.json", "where to write the generated transcript")
	speakers := flag.Int("speakers", 2, "number of speakers; 0 generates a flat transcript without speaker labels")
	turns := flag.Int("turns", 8, "number of speaker turns")
	words := flag.Int("words", 12, "words per turn")
	seed := flag.Int64("seed", 42, "random seed; fixed seeds reproduce the same file")
	flag.Parse()

	raw := generate(rand.New(rand.NewSource(*seed)), *speakers, *turns, *words)

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		log.Fatalf("marshal transcript: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}

	log.Printf("Generated %d items across %d turns (%d speakers): %s",
		len(raw.Results.Items), *turns, *speakers, *out)
}

func generate(rng *rand.Rand, speakers, turns, wordsPerTurn int) models.RawTranscript {
	results := &models.Results{}
	var fullText strings.Builder
	clock := 0.2

	for turn := 0; turn < turns; turn++ {
		turnStart := clock
		for i := 0; i < wordsPerTurn; i++ {
			word := vocabulary[rng.Intn(len(vocabulary))]
			start := clock
			end := start + 0.25 + rng.Float64()*0.2
			clock = end + 0.04 + rng.Float64()*0.1

			results.Items = append(results.Items, models.Item{
				Type:      models.ItemTypePronunciation,
				StartTime: seconds(start),
				EndTime:   seconds(end),
				Alternatives: []models.Alternative{
					{Confidence: confidence(rng), Content: word},
				},
			})
			if fullText.Len() > 0 {
				fullText.WriteByte(' ')
			}
			fullText.WriteString(word)
		}

		mark := "."
		if rng.Intn(4) == 0 {
			mark = "?"
		}
		results.Items = append(results.Items, models.Item{
			Type:         models.ItemTypePunctuation,
			Alternatives: []models.Alternative{{Confidence: "0.0", Content: mark}},
		})
		fullText.WriteString(mark)

		if speakers > 0 {
			results.SpeakerLabels = appendSegment(results.SpeakerLabels, models.Segment{
				SpeakerLabel: "spk_" + strconv.Itoa(turn%speakers),
				StartTime:    seconds(turnStart),
				EndTime:      seconds(clock),
			})
		}
		// Pause between turns.
		clock += 0.5 + rng.Float64()*0.4
	}

	if results.SpeakerLabels != nil {
		results.SpeakerLabels.Speakers = speakers
	}
	results.Transcripts = []models.Transcript{{Transcript: fullText.String()}}

	return models.RawTranscript{
		AccountID: "000000000000",
		JobName:   "sample",
		Status:    "COMPLETED",
		Results:   results,
	}
}

func appendSegment(labels *models.SpeakerLabels, seg models.Segment) *models.SpeakerLabels {
	if labels == nil {
		labels = &models.SpeakerLabels{}
	}
	labels.Segments = append(labels.Segments, seg)
	return labels
}

// confidence skews high with an occasional uncertain word, the way real
// recognition output looks.
func confidence(rng *rand.Rand) string {
	c := 0.9 + rng.Float64()*0.1
	if rng.Intn(10) == 0 {
		c = 0.3 + rng.Float64()*0.55
	}
	return strconv.FormatFloat(c, 'f', 4, 64)
}

func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
