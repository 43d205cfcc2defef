package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/truthlens/truthlens-backend/internal/config"
	"github.com/truthlens/truthlens-backend/internal/models"
)

// ErrUnconfigured marks an enrichment capability that was not given an API
// key at startup. Callers treat it like any other stage failure and continue.
var ErrUnconfigured = errors.New("capability not configured")

// Verdict is a real/fake classification with its confidence score and the
// indicators supporting or opposing it.
type Verdict struct {
	IsReal     bool
	Confidence int
	Reasoning  string
	Indicators models.NewsIndicators
	Raw        string
}

// Classifier produces a verdict for a candidate news item. The configured
// variant calls a language model; the heuristic stub is the documented
// placeholder fallback and should be replaced by a real model behind the
// same interface.
type Classifier interface {
	Classify(ctx context.Context, url, headline, content string) (*Verdict, error)
	Configured() bool
}

// NewClassifier selects the classifier variant once at startup.
func NewClassifier(cfg *config.Config) Classifier {
	if cfg.OpenAIAPIKey == "" {
		return &HeuristicClassifier{}
	}
	return &OpenAIClassifier{
		client:  openai.NewClient(cfg.OpenAIAPIKey),
		model:   cfg.OpenAIModel,
		timeout: cfg.AITimeout,
	}
}

const classifierSystemPrompt = `You are a fact-checking AI assistant. Analyze the provided news article and determine if it appears to be real or fake news. Respond with a JSON object containing: {"isReal": boolean, "confidence": number (0-100), "reasoning": string, "indicators": {"positive": string[], "negative": string[]}}`

// OpenAIClassifier is the Configured variant: a chat completion requesting a
// structured JSON verdict.
type OpenAIClassifier struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func (c *OpenAIClassifier) Configured() bool { return true }

func (c *OpenAIClassifier) Classify(ctx context.Context, url, headline, content string) (*Verdict, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if headline == "" {
		headline = "No headline"
	}
	if content == "" {
		content = "No content"
	}
	text := fmt.Sprintf("Headline: %s\nContent: %s\nSource URL: %s", headline, content, url)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifierSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty completion response")
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	verdict, err := ParseVerdict(raw)
	if err != nil {
		return nil, err
	}
	return verdict, nil
}

// ParseVerdict decodes the model's structured verdict. A response that is not
// valid JSON, or that omits the isReal/confidence fields, is an error so the
// pipeline keeps its prior working values.
func ParseVerdict(raw string) (*Verdict, error) {
	var parsed struct {
		IsReal     *bool   `json:"isReal"`
		Confidence *int    `json:"confidence"`
		Reasoning  string  `json:"reasoning"`
		Indicators struct {
			Positive []string `json:"positive"`
			Negative []string `json:"negative"`
		} `json:"indicators"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("verdict is not valid JSON: %w", err)
	}
	if parsed.IsReal == nil || parsed.Confidence == nil {
		return nil, errors.New("verdict missing isReal or confidence")
	}

	confidence := *parsed.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	return &Verdict{
		IsReal:     *parsed.IsReal,
		Confidence: confidence,
		Reasoning:  parsed.Reasoning,
		Indicators: models.NewsIndicators{
			Positive: parsed.Indicators.Positive,
			Negative: parsed.Indicators.Negative,
		},
		Raw: raw,
	}, nil
}

// HeuristicClassifier is the Unconfigured placeholder: a pseudo-random
// verdict biased toward real (~70%) with confidence in [80,99]. It never
// fails and exists only so the pipeline always has a baseline.
type HeuristicClassifier struct{}

func (c *HeuristicClassifier) Configured() bool { return false }

func (c *HeuristicClassifier) Classify(_ context.Context, _, _, _ string) (*Verdict, error) {
	return &Verdict{
		IsReal:     rand.Float64() > 0.3,
		Confidence: 80 + rand.Intn(20),
	}, nil
}
