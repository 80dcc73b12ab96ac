package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"manasfit-be/pkg/llm"
)

const (
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel  = "gemini-1.5-flash"

	RoleUser  = "user"
	RoleModel = "model"

	blockMediumAndAbove = "BLOCK_MEDIUM_AND_ABOVE"
)

var safetyCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

type ChatParts struct {
	Text string `json:"text"`
}

type ChatContent struct {
	Parts []*ChatParts `json:"parts"`
	Role  string       `json:"role"`
}

type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type ChatRequest struct {
	Contents         []*ChatContent    `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
	SafetySettings   []*SafetySetting  `json:"safetySettings,omitempty"`
}

type ChatCandidate struct {
	Content      *ChatContent `json:"content"`
	FinishReason string       `json:"finishReason"`
}

type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

type ChatResponse struct {
	Candidates    []*ChatCandidate `json:"candidates"`
	UsageMetadata *UsageMetadata   `json:"usageMetadata,omitempty"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type Provider struct {
	APIKey string
	APIURL string
	Model  string
	Client *http.Client
}

var _ llm.LLMProvider = &Provider{}

func NewProvider(apiKey, apiURL, model string) *Provider {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Provider{
		APIKey: apiKey,
		APIURL: strings.TrimRight(apiURL, "/"),
		Model:  model,
		// The caller bounds each call with a context deadline; this is a backstop.
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *Provider) Available() bool {
	return p.APIKey != ""
}

// BuildContents maps generic messages to Gemini turns. Gemini has no system
// role in contents, so system text is sent as a user turn.
func BuildContents(history []llm.Message) []*ChatContent {
	contents := make([]*ChatContent, 0, len(history))
	for _, msg := range history {
		role := RoleUser
		if msg.Role == llm.RoleAssistant || msg.Role == RoleModel {
			role = RoleModel
		}
		contents = append(contents, &ChatContent{
			Parts: []*ChatParts{{Text: msg.Content}},
			Role:  role,
		})
	}
	return contents
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if !p.Available() {
		return "", llm.NewError(llm.ReasonConfiguration, llm.ErrMissingAPIKey)
	}
	options := llm.Apply(opts...)

	model := p.Model
	if options.Model != "" {
		model = options.Model
	}

	safety := make([]*SafetySetting, 0, len(safetyCategories))
	for _, category := range safetyCategories {
		safety = append(safety, &SafetySetting{Category: category, Threshold: blockMediumAndAbove})
	}

	payload := ChatRequest{
		Contents: BuildContents(history),
		GenerationConfig: &GenerationConfig{
			Temperature:     options.Temperature,
			TopK:            options.TopK,
			TopP:            options.TopP,
			MaxOutputTokens: options.MaxTokens,
		},
		SafetySettings: safety,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", llm.NewError(llm.ReasonUpstream, fmt.Errorf("marshal request: %w", err))
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.APIURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", llm.NewError(llm.ReasonConfiguration, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("x-goog-api-key", p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.Client.Do(req)
	if err != nil {
		if ctxErr := llm.FromContext(ctx, err); ctxErr != nil {
			return "", ctxErr
		}
		return "", llm.Classify(err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", llm.Classify(fmt.Errorf("read response: %w", err))
	}

	if res.StatusCode != http.StatusOK {
		var apiErr errorResponse
		_ = json.Unmarshal(resBody, &apiErr)
		msg := apiErr.Error.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return "", llm.NewError(
			llm.ReasonForStatus(res.StatusCode),
			fmt.Errorf("gemini api error: %d %s - %s", res.StatusCode, http.StatusText(res.StatusCode), msg),
		)
	}

	var geminiRes ChatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", llm.NewError(llm.ReasonEmptyResponse, fmt.Errorf("unmarshal response: %w", err))
	}

	text := firstCandidateText(&geminiRes)
	if strings.TrimSpace(text) == "" {
		return "", llm.NewError(llm.ReasonEmptyResponse, llm.ErrNoCandidates)
	}
	if u := geminiRes.UsageMetadata; u != nil {
		options.Record(u.PromptTokenCount, u.CandidatesTokenCount, u.TotalTokenCount)
	}
	return text, nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func firstCandidateText(res *ChatResponse) string {
	if len(res.Candidates) == 0 {
		return ""
	}
	c := res.Candidates[0]
	if c == nil || c.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range c.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
