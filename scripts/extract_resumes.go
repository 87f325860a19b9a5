// Command extract_resumes runs the resume extractor over local files and
// prints what the API would send to the model.
//
//	go run ./scripts/extract_resumes.go -preview 300 resume.pdf cv.docx
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/Vignesh-V27/prepgenie-app/internal/services"
)

func main() {
	preview := flag.Int("preview", 200, "number of characters to print from each document")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		log.Fatal("usage: extract_resumes [-preview N] FILE...")
	}

	parser := services.NewDocumentParserService()

	successCount := 0
	failCount := 0

	for _, path := range paths {
		entry := log.WithField("file", filepath.Base(path))

		if _, err := os.Stat(path); os.IsNotExist(err) {
			entry.Warn("file not found, skipping")
			failCount++
			continue
		}

		kind, err := services.DetectKind(path)
		if err != nil {
			entry.WithError(err).Warn("skipping")
			failCount++
			continue
		}

		text, err := parser.ExtractText(path, kind)
		if err != nil {
			entry.WithError(err).Error("failed to extract text")
			failCount++
			continue
		}

		entry.WithFields(log.Fields{
			"kind":  kind,
			"chars": utf8.RuneCountInString(text),
			"lines": len(services.SplitQuestions(text)),
		}).Info("extracted")

		fmt.Println(services.TruncateChars(text, *preview))
		fmt.Println(strings.Repeat("-", 60))
		successCount++
	}

	log.WithFields(log.Fields{
		"successful": successCount,
		"failed":     failCount,
	}).Info("extraction summary")

	if failCount > 0 {
		os.Exit(1)
	}
}
