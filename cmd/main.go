package main

import (
	"flag"
	"fmt"
	"os"

	"speech-transcript-export/internal/app"
	"speech-transcript-export/internal/config"
	"speech-transcript-export/internal/export"
)

func main() {
	input := flag.String("input", "", "path of the transcription job JSON (may also be passed as the first argument)")
	saveAs := flag.String("save-as", "", "destination path; a known extension selects the format unless -format is set")
	format := flag.String("format", "", "output format: docx, csv, sqlite or vtt (default docx)")
	tmpDir := flag.String("tmp-dir", "", "deprecated, do not use")
	logLevel := flag.String("log-level", "", "override LOG_LEVEL (debug, info, warn, error)")
	logFormat := flag.String("log-format", "", "override LOG_FORMAT (json, console)")
	flag.Parse()

	if *input == "" && flag.NArg() > 0 {
		*input = flag.Arg(0)
	}
	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: speech-transcript-export [flags] <transcript.json>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := config.Load()
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Logging.Format = *logFormat
	}

	application := app.New(cfg)
	if err := application.Start(); err != nil {
		application.Logger.Fatal().Err(err).Msg("startup failed")
	}

	err := export.NewWriter().Write(config.Options{
		Input:  *input,
		SaveAs: *saveAs,
		Format: *format,
		TmpDir: *tmpDir,
	})
	if err != nil {
		application.Logger.Error().Err(err).Msg("conversion failed")
		application.Shutdown()
		os.Exit(1)
	}

	application.Shutdown()
}
