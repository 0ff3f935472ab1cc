package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/BerylCAtieno/pdf-summarizer/internal/utils"
)

// SummarizationModel condenses one piece of text.
type SummarizationModel interface {
	Summarize(ctx context.Context, text string, minLength, maxLength int) (string, error)
}

// GenerationModel follows a text instruction.
type GenerationModel interface {
	Generate(ctx context.Context, prompt string, maxNewTokens int) (string, error)
}

// HuggingFaceModel calls a single model through the Hugging Face Inference
// API (or any server speaking the same pipeline protocol, such as a
// self-hosted inference endpoint).
type HuggingFaceModel struct {
	baseURL string
	token   string
	model   string
	logger  *utils.Logger
	client  *http.Client
}

type inferenceRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters map[string]any `json:"parameters"`
	Options    inferenceOpts  `json:"options"`
}

type inferenceOpts struct {
	WaitForModel bool `json:"wait_for_model"`
	UseCache     bool `json:"use_cache"`
}

type inferenceOutput struct {
	SummaryText   string `json:"summary_text"`
	GeneratedText string `json:"generated_text"`
}

type inferenceError struct {
	Error string `json:"error"`
}

func NewHuggingFaceModel(baseURL, token, model string, timeout time.Duration, logger *utils.Logger) *HuggingFaceModel {
	return &HuggingFaceModel{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		model:   model,
		logger:  logger,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the model identifier, e.g. "facebook/bart-large-cnn".
func (m *HuggingFaceModel) Name() string {
	return m.model
}

// Summarize runs the summarization pipeline with greedy decoding.
func (m *HuggingFaceModel) Summarize(ctx context.Context, text string, minLength, maxLength int) (string, error) {
	out, err := m.infer(ctx, text, map[string]any{
		"min_length": minLength,
		"max_length": maxLength,
		"do_sample":  false,
	})
	if err != nil {
		return "", err
	}
	return out.SummaryText, nil
}

// Generate runs the text2text-generation pipeline with greedy decoding.
func (m *HuggingFaceModel) Generate(ctx context.Context, prompt string, maxNewTokens int) (string, error) {
	out, err := m.infer(ctx, prompt, map[string]any{
		"max_new_tokens": maxNewTokens,
		"do_sample":      false,
	})
	if err != nil {
		return "", err
	}
	return out.GeneratedText, nil
}

func (m *HuggingFaceModel) infer(ctx context.Context, inputs string, params map[string]any) (*inferenceOutput, error) {
	reqBody := inferenceRequest{
		Inputs:     inputs,
		Parameters: params,
		Options:    inferenceOpts{WaitForModel: true, UseCache: false},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := m.baseURL + "/" + m.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if m.token != "" {
		req.Header.Set("Authorization", "Bearer "+m.token)
	}

	start := time.Now()
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to send request: %w", m.model, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", m.model, err)
	}

	m.logger.Debug("Inference call finished",
		"model", m.model,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode != http.StatusOK {
		var apiErr inferenceError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("%s: inference error (status %d): %s", m.model, resp.StatusCode, apiErr.Error)
		}
		m.logger.Error("Inference API error", "model", m.model, "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%s: inference API returned status %d", m.model, resp.StatusCode)
	}

	return parseInferenceOutput(m.model, body)
}

// parseInferenceOutput accepts both the list form the hosted API returns and
// the single-object form some self-hosted servers return.
func parseInferenceOutput(model string, body []byte) (*inferenceOutput, error) {
	var outputs []inferenceOutput
	if err := json.Unmarshal(body, &outputs); err == nil {
		if len(outputs) == 0 {
			return nil, fmt.Errorf("%s: empty inference response", model)
		}
		return &outputs[0], nil
	}

	var single inferenceOutput
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal response: %w", model, err)
	}
	return &single, nil
}
