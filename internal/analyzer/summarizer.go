package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/pdf-summarizer/internal/utils"
)

// ChunkSummarizer summarizes chunks one at a time and joins the results.
type ChunkSummarizer struct {
	model     SummarizationModel
	minLength int
	maxLength int
	logger    *utils.Logger
}

func NewChunkSummarizer(model SummarizationModel, minLength, maxLength int, logger *utils.Logger) *ChunkSummarizer {
	return &ChunkSummarizer{
		model:     model,
		minLength: minLength,
		maxLength: maxLength,
		logger:    logger,
	}
}

// SummarizeChunks returns the space-joined per-chunk summaries in chunk
// order. The first model failure aborts the whole call.
func (s *ChunkSummarizer) SummarizeChunks(ctx context.Context, chunks []string) (string, error) {
	summaries := make([]string, 0, len(chunks))

	for i, chunk := range chunks {
		summary, err := s.model.Summarize(ctx, chunk, s.minLength, s.maxLength)
		if err != nil {
			return "", fmt.Errorf("summarizing chunk %d/%d: %w", i+1, len(chunks), err)
		}
		s.logger.Debug("Chunk summarized", "chunk", i+1, "of", len(chunks), "summary_length", len(summary))
		summaries = append(summaries, summary)
	}

	return strings.Join(summaries, " "), nil
}
