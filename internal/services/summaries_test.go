package services

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/BerylCAtieno/pdf-summarizer/internal/analyzer"
	"github.com/BerylCAtieno/pdf-summarizer/internal/models"
	"github.com/BerylCAtieno/pdf-summarizer/internal/storage"
	"github.com/BerylCAtieno/pdf-summarizer/internal/utils"
)

type stubSummarizer struct {
	chunks []string
	err    error
}

func (s *stubSummarizer) Summarize(ctx context.Context, text string, minLength, maxLength int) (string, error) {
	s.chunks = append(s.chunks, text)
	if s.err != nil {
		return "", s.err
	}
	return "Summary of chunk.", nil
}

type stubGenerator struct {
	budgets []int
	err     error
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string, maxNewTokens int) (string, error) {
	g.budgets = append(g.budgets, maxNewTokens)
	if g.err != nil {
		return "", g.err
	}
	switch {
	case strings.HasPrefix(prompt, "Extract the most important points"):
		return "Models learn from data.\nAttention focuses on tokens. Ok.", nil
	case strings.HasPrefix(prompt, "List important technical concepts"):
		return "Neural networks are universal approximators. Attention mechanism explained.", nil
	default:
		return "  generated text  ", nil
	}
}

type testEnv struct {
	dir        string
	service    *summaryService
	summarizer *stubSummarizer
	generator  *stubGenerator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage returned error: %v", err)
	}

	logger := utils.NewDiscardLogger()
	sum := &stubSummarizer{}
	gen := &stubGenerator{}

	svc := NewService(
		store,
		analyzer.NewChunkSummarizer(sum, 40, 120, logger),
		analyzer.NewStructuredGenerator(gen),
		Options{ChunkMaxWords: 400, BulletMaxItems: 5},
		logger,
	).(*summaryService)

	return &testEnv{dir: dir, service: svc, summarizer: sum, generator: gen}
}

func (e *testEnv) assertUploadsRemoved(t *testing.T) {
	t.Helper()
	entries, err := os.ReadDir(e.dir)
	if err != nil {
		t.Fatalf("failed to read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected upload directory to be empty, found %d entries", len(entries))
	}
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("../extractor/testdata/" + name)
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", name, err)
	}
	return data
}

func TestSummarizeSuccess(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.service.Summarize(context.Background(), &models.SummaryRequest{
		File:     readFixture(t, "sample.pdf"),
		Filename: "sample.pdf",
		Length:   "medium",
	})
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	if resp.Title != "generated text" {
		t.Errorf("Expected trimmed title, got %q", resp.Title)
	}
	if resp.ExecutiveSummary != "generated text" || resp.FinalTakeaway != "generated text" {
		t.Errorf("Unexpected passthrough fields: %+v", resp)
	}
	if resp.KeyPoints != "- Models learn from data.\n- Attention focuses on tokens." {
		t.Errorf("Unexpected key points %q", resp.KeyPoints)
	}
	if resp.ImportantConcepts != "- Neural networks are universal approximators.\n- Attention mechanism explained." {
		t.Errorf("Unexpected concepts %q", resp.ImportantConcepts)
	}

	if len(env.summarizer.chunks) != 1 {
		t.Errorf("Expected one chunk for a short document, got %d", len(env.summarizer.chunks))
	}
	if want := []int{20, 120, 120, 80, 60}; !equalInts(env.generator.budgets, want) {
		t.Errorf("Expected budgets %v, got %v", want, env.generator.budgets)
	}

	env.assertUploadsRemoved(t)
}

func TestSummarizeLengthProfiles(t *testing.T) {
	tests := []struct {
		length   string
		wantExec int
	}{
		{"short", 60},
		{"medium", 120},
		{"long", 200},
		{"bogus", 120},
		{"", 120},
	}

	for _, tt := range tests {
		t.Run(tt.length, func(t *testing.T) {
			env := newTestEnv(t)
			env.service.extract = func([]byte) (string, error) {
				return "A document with some text. It has two sentences.", nil
			}

			if _, err := env.service.Summarize(context.Background(), &models.SummaryRequest{
				File:     []byte("%PDF"),
				Filename: "doc.pdf",
				Length:   tt.length,
			}); err != nil {
				t.Fatalf("Summarize returned error: %v", err)
			}

			if got := env.generator.budgets[1]; got != tt.wantExec {
				t.Errorf("Expected executive summary budget %d, got %d", tt.wantExec, got)
			}
		})
	}
}

func TestSummarizeChunksLongDocument(t *testing.T) {
	env := newTestEnv(t)
	env.service.opts.ChunkMaxWords = 10
	env.service.extract = func([]byte) (string, error) {
		return strings.Repeat("one two three four five. ", 6), nil
	}

	if _, err := env.service.Summarize(context.Background(), &models.SummaryRequest{
		File:     []byte("%PDF"),
		Filename: "long.pdf",
	}); err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	if len(env.summarizer.chunks) != 3 {
		t.Errorf("Expected 3 chunks, got %d", len(env.summarizer.chunks))
	}
}

func TestSummarizeNoExtractableText(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Summarize(context.Background(), &models.SummaryRequest{
		File:     readFixture(t, "scanned.pdf"),
		Filename: "scanned.pdf",
	})

	appErr, ok := utils.AsAppError(err)
	if !ok {
		t.Fatalf("Expected AppError, got %v", err)
	}
	if appErr.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", appErr.StatusCode)
	}
	if !strings.Contains(appErr.Message, "no extractable text") {
		t.Errorf("Unexpected message %q", appErr.Message)
	}
	if len(env.summarizer.chunks) != 0 {
		t.Error("Summarizer should not be called without text")
	}

	env.assertUploadsRemoved(t)
}

func TestSummarizeFailuresAreInternalErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*testEnv)
		wantMsg string
	}{
		{
			name: "extraction",
			setup: func(e *testEnv) {
				e.service.extract = func([]byte) (string, error) { return "", errors.New("corrupt xref table") }
			},
			wantMsg: "corrupt xref table",
		},
		{
			name:    "summarization",
			setup:   func(e *testEnv) { e.summarizer.err = errors.New("summarizer unavailable") },
			wantMsg: "summarizer unavailable",
		},
		{
			name:    "generation",
			setup:   func(e *testEnv) { e.generator.err = errors.New("generator unavailable") },
			wantMsg: "generator unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.setup(env)

			_, err := env.service.Summarize(context.Background(), &models.SummaryRequest{
				File:     readFixture(t, "sample.pdf"),
				Filename: "sample.pdf",
			})

			appErr, ok := utils.AsAppError(err)
			if !ok {
				t.Fatalf("Expected AppError, got %v", err)
			}
			if appErr.StatusCode != http.StatusInternalServerError {
				t.Errorf("Expected 500, got %d", appErr.StatusCode)
			}
			if !strings.Contains(appErr.Message, tt.wantMsg) {
				t.Errorf("Expected message containing %q, got %q", tt.wantMsg, appErr.Message)
			}

			env.assertUploadsRemoved(t)
		})
	}
}

func TestSummarizeRemovesUploadOnPanic(t *testing.T) {
	env := newTestEnv(t)
	env.service.extract = func([]byte) (string, error) { panic("parser bug") }

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic to propagate")
			}
		}()
		env.service.Summarize(context.Background(), &models.SummaryRequest{
			File:     []byte("%PDF"),
			Filename: "panic.pdf",
		})
	}()

	env.assertUploadsRemoved(t)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
