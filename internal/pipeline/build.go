// Package pipeline orchestrates text extraction, field parsing and ranking
// into complete ranking runs.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-ranker/internal/extraction"
	"github.com/jonathan/resume-ranker/internal/parsing"
	"github.com/jonathan/resume-ranker/internal/types"
	"github.com/jonathan/resume-ranker/internal/vocabulary"
)

// maxParallelExtractions bounds how many documents are extracted at once.
const maxParallelExtractions = 8

// Document is one uploaded resume: its file name (which selects the
// extraction strategy by extension) and raw byte content.
type Document struct {
	FileName string
	Data     []byte
}

// BuildRecord assembles one fully populated CandidateRecord from a document.
// It never fails: extraction and every field heuristic degrade to empty
// values on their own, so the record is always complete.
func BuildRecord(doc Document, vocab vocabulary.Vocabulary) types.CandidateRecord {
	rawText := extraction.Text(doc.FileName, doc.Data)

	education, experience := parsing.EducationAndExperience(parsing.ExtractSections(rawText))

	return types.CandidateRecord{
		FileName:   doc.FileName,
		RawText:    rawText,
		Name:       parsing.ExtractName(rawText),
		Email:      parsing.ExtractEmail(rawText),
		Phone:      parsing.ExtractPhone(rawText),
		Skills:     vocab.Match(rawText),
		Education:  education,
		Experience: experience,
	}
}

// BuildRecords builds one record per document, order-preserving. Documents
// are independent during extraction, so they are processed in parallel; the
// subsequent TF-IDF stage still sees the whole batch at once.
func BuildRecords(ctx context.Context, docs []Document, vocab vocabulary.Vocabulary) []types.CandidateRecord {
	records := make([]types.CandidateRecord, len(docs))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelExtractions)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			records[i] = BuildRecord(doc, vocab)
			return nil
		})
	}

	// Workers only write their own slot and never return errors.
	_ = g.Wait()

	return records
}
