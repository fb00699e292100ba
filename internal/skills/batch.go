package skills

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Document is a job description to score in a batch.
type Document struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Text  string `json:"-"`
}

// BatchResult pairs a document with its match result.
type BatchResult struct {
	ID     string      `json:"id"`
	Title  string      `json:"title,omitempty"`
	Result MatchResult `json:"result"`
}

// ScoreBatch scores one resume against many job descriptions. The resume is
// extracted once. Documents are scored by at most workers goroutines
// (GOMAXPROCS when workers <= 0) and results keep the input order.
// It returns the context error if ctx is cancelled before all documents
// are scored.
func (m *Matcher) ScoreBatch(ctx context.Context, resume string, docs []Document, workers int) ([]BatchResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	resumeSet := m.Extract(resume)
	results := make([]BatchResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, doc := range docs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = BatchResult{
				ID:     doc.ID,
				Title:  doc.Title,
				Result: m.CompareSets(resumeSet, m.Extract(doc.Text)),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// RankBatch returns the results ordered by score, best first. Equal scores
// keep their input order.
func RankBatch(results []BatchResult) []BatchResult {
	out := make([]BatchResult, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.MatchScore > out[j].Result.MatchScore
	})

	return out
}
