package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BerylCAtieno/pdf-summarizer/internal/analyzer"
	"github.com/BerylCAtieno/pdf-summarizer/internal/extractor"
	"github.com/BerylCAtieno/pdf-summarizer/internal/models"
	"github.com/BerylCAtieno/pdf-summarizer/internal/storage"
	"github.com/BerylCAtieno/pdf-summarizer/internal/textproc"
	"github.com/BerylCAtieno/pdf-summarizer/internal/utils"
)

type SummaryService interface {
	Summarize(ctx context.Context, req *models.SummaryRequest) (*models.SummaryResponse, error)
}

// Options tunes the text stages of the pipeline.
type Options struct {
	ChunkMaxWords  int
	BulletMaxItems int
}

type summaryService struct {
	storage    storage.Storage
	summarizer *analyzer.ChunkSummarizer
	generator  *analyzer.StructuredGenerator
	extract    func([]byte) (string, error)
	opts       Options
	logger     *utils.Logger
}

func NewService(
	store storage.Storage,
	summarizer *analyzer.ChunkSummarizer,
	generator *analyzer.StructuredGenerator,
	opts Options,
	logger *utils.Logger,
) SummaryService {
	return &summaryService{
		storage:    store,
		summarizer: summarizer,
		generator:  generator,
		extract:    extractor.ExtractPDF,
		opts:       opts,
		logger:     logger,
	}
}

// Summarize stores the upload for the duration of the call, extracts its
// text and runs it through chunking, summarization and structured
// generation. The stored upload is removed on every return path.
func (s *summaryService) Summarize(ctx context.Context, req *models.SummaryRequest) (*models.SummaryResponse, error) {
	start := time.Now()
	key := storage.UploadKey(req.Filename)

	if err := s.storage.Upload(ctx, key, req.File, "application/pdf"); err != nil {
		s.logger.Error("Failed to store upload", "error", err, "key", key)
		return nil, utils.WrapInternalError(err)
	}
	defer s.cleanup(key)

	text, err := s.extractText(ctx, key)
	if err != nil {
		s.logger.Error("Failed to extract text", "error", err, "filename", req.Filename)
		return nil, utils.WrapInternalError(err)
	}

	if strings.TrimSpace(text) == "" {
		s.logger.Warn("No text extracted from document", "filename", req.Filename)
		return nil, utils.NewBadRequestError("PDF contains no extractable text")
	}

	profile := models.ResolveLength(req.Length)
	chunks := textproc.SplitText(text, s.opts.ChunkMaxWords)

	s.logger.Info("Summarizing document",
		"filename", req.Filename,
		"text_length", len(text),
		"chunks", len(chunks),
		"length", profile.Name)

	combined, err := s.summarizer.SummarizeChunks(ctx, chunks)
	if err != nil {
		s.logger.Error("Failed to summarize chunks", "error", err, "filename", req.Filename)
		return nil, utils.WrapInternalError(err)
	}

	out, err := s.generator.Structure(ctx, combined, profile)
	if err != nil {
		s.logger.Error("Failed to generate structured summary", "error", err, "filename", req.Filename)
		return nil, utils.WrapInternalError(err)
	}

	s.logger.Info("Document summarized",
		"filename", req.Filename,
		"summary_length", len(combined),
		"duration_ms", time.Since(start).Milliseconds())

	return &models.SummaryResponse{
		Title:             out.Title,
		ExecutiveSummary:  out.ExecutiveSummary,
		KeyPoints:         textproc.ForceBullets(out.KeyPoints, s.opts.BulletMaxItems),
		ImportantConcepts: textproc.ForceBullets(out.Concepts, s.opts.BulletMaxItems),
		FinalTakeaway:     out.FinalTakeaway,
	}, nil
}

func (s *summaryService) extractText(ctx context.Context, key string) (string, error) {
	data, err := s.storage.Download(ctx, key)
	if err != nil {
		return "", err
	}

	text, err := s.extract(data)
	if err != nil {
		return "", fmt.Errorf("extracting text: %w", err)
	}
	return text, nil
}

// cleanup runs detached from the request context so a cancelled request
// still removes its upload.
func (s *summaryService) cleanup(key string) {
	if err := s.storage.Delete(context.Background(), key); err != nil {
		s.logger.Error("Failed to remove upload", "error", err, "key", key)
	}
}
