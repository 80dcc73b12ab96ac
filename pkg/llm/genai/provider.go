// Package genai adapts the official Google Gen AI SDK to llm.LLMProvider.
package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"manasfit-be/pkg/llm"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-1.5-flash"

type Provider struct {
	apiKey string
	model  string

	// BaseURL overrides the SDK endpoint. Empty uses the public Gemini API.
	BaseURL string

	once    sync.Once
	client  *genai.Client
	initErr error
}

var _ llm.LLMProvider = &Provider{}

func NewProvider(apiKey, model string) *Provider {
	if model == "" {
		model = DefaultModel
	}
	return &Provider{apiKey: apiKey, model: model}
}

func (p *Provider) Available() bool {
	return p.apiKey != ""
}

// The SDK client is built lazily so a missing key never fails startup.
func (p *Provider) getClient(ctx context.Context) (*genai.Client, error) {
	p.once.Do(func() {
		p.client, p.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      p.apiKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: p.BaseURL},
		})
	})
	return p.client, p.initErr
}

func safetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, c := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  c,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		})
	}
	return settings
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if !p.Available() {
		return "", llm.NewError(llm.ReasonConfiguration, llm.ErrMissingAPIKey)
	}
	options := llm.Apply(opts...)

	client, err := p.getClient(ctx)
	if err != nil {
		return "", llm.NewError(llm.ReasonConfiguration, fmt.Errorf("init genai client: %w", err))
	}

	model := p.model
	if options.Model != "" {
		model = options.Model
	}

	var system []string
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case llm.RoleSystem:
			system = append(system, msg.Content)
		case llm.RoleAssistant, "model":
			contents = append(contents, &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: msg.Content}}})
		default:
			contents = append(contents, &genai.Content{Role: genai.RoleUser, Parts: []*genai.Part{{Text: msg.Content}}})
		}
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(options.Temperature)),
		TopK:            genai.Ptr(float32(options.TopK)),
		TopP:            genai.Ptr(float32(options.TopP)),
		MaxOutputTokens: int32(options.MaxTokens),
		SafetySettings:  safetySettings(),
	}
	if len(system) > 0 {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}}}
	}

	resp, err := client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		if ctxErr := llm.FromContext(ctx, err); ctxErr != nil {
			return "", ctxErr
		}
		return "", classifyAPIError(err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", llm.NewError(llm.ReasonEmptyResponse, llm.ErrNoCandidates)
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", llm.NewError(llm.ReasonEmptyResponse, llm.ErrNoCandidates)
	}
	if u := resp.UsageMetadata; u != nil {
		options.Record(int(u.PromptTokenCount), int(u.CandidatesTokenCount), int(u.TotalTokenCount))
	}
	return sb.String(), nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func classifyAPIError(err error) *llm.GenerationError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return llm.NewError(llm.ReasonForStatus(apiErr.Code), err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return llm.NewError(llm.ReasonForStatus(apiErrPtr.Code), err)
	}
	return llm.Classify(err)
}
