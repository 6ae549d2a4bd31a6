package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mkraj/jobtrack/internal/domain"
	"github.com/mkraj/jobtrack/internal/prompts"
)

// ExtractionService turns raw job-posting text into structured fields using an
// OpenAI-compatible chat-completions endpoint.
type ExtractionService struct {
	client   *resty.Client
	model    string
	endpoint string
}

// ExtractionConfig holds configuration for the extraction service.
type ExtractionConfig struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// Extraction is the flat field mapping returned by the model.
type Extraction struct {
	CompanyName         string `json:"company_name"`
	OfferType           string `json:"offer_type"`
	Stipend             string `json:"stipend"`
	CTC                 string `json:"ctc"`
	Eligibility         string `json:"eligibility"`
	Branches            string `json:"branches"`
	Role                string `json:"role"`
	RecruitmentProcess  string `json:"recruitment_process"`
	ApplicationDeadline string `json:"application_deadline"`
	FormLink            string `json:"form_link"`
	POCName             string `json:"poc_name"`
	POCPhone            string `json:"poc_phone"`
}

// ErrNoCompany is returned when the model response carries no company name,
// which makes the posting untrackable.
var ErrNoCompany = errors.New("extraction returned no company name")

// NewExtractionService creates a new extraction service.
// Parameters:
//   - cfg: endpoint configuration including model and API key.
// Returns:
//   - *ExtractionService: initialized client wrapper.
func NewExtractionService(cfg *ExtractionConfig) *ExtractionService {
	client := resty.New()
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	// Set timeout to prevent hanging requests
	client.SetTimeout(60 * time.Second)

	// Default to OpenAI compatible endpoint if not specified
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &ExtractionService{
		client:   client,
		model:    cfg.Model,
		endpoint: baseURL + "/chat/completions",
	}
}

// GetModel returns the model name being used.
func (s *ExtractionService) GetModel() string {
	return s.model
}

// OpenAI-compatible Chat Completion API request/response structures
type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Extract sends the posting text through the instruction template and decodes
// the structured field mapping from the response.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - text: raw job-posting text.
// Returns:
//   - *Extraction: structured fields with "Not Specified" defaults applied.
//   - error: non-nil if the API request fails or the response is unparseable.
func (s *ExtractionService) Extract(ctx context.Context, text string) (*Extraction, error) {
	req := openAIRequest{
		Model: s.model,
		Messages: []openAIMessage{
			{
				Role:    "system",
				Content: prompts.ExtractionSystemPrompt,
			},
			{
				Role:    "user",
				Content: prompts.ExtractionUserPrompt + text,
			},
		},
		MaxTokens: 800,
	}

	var resp openAIResponse
	httpResp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&resp).
		Post(s.endpoint)

	if err != nil {
		return nil, fmt.Errorf("failed to call extraction API: %w", err)
	}

	if httpResp.StatusCode() < 200 || httpResp.StatusCode() >= 300 {
		errorMsg := fmt.Sprintf("HTTP %d", httpResp.StatusCode())
		if resp.Error != nil {
			errorMsg = fmt.Sprintf("HTTP %d: %s", httpResp.StatusCode(), resp.Error.Message)
		} else if len(httpResp.Body()) > 0 {
			errorMsg = fmt.Sprintf("HTTP %d: %s", httpResp.StatusCode(), string(httpResp.Body()))
		}
		return nil, fmt.Errorf("extraction API returned error: %s", errorMsg)
	}

	if resp.Error != nil {
		return nil, fmt.Errorf("extraction API error: %s", resp.Error.Message)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from extraction API (status: %d)", httpResp.StatusCode())
	}

	return parseExtraction(resp.Choices[0].Message.Content)
}

// fencePattern strips markdown code-block wrapping the model sometimes adds
// despite being told not to.
var fencePattern = regexp.MustCompile("```json\n?|```")

// parseExtraction cleans the raw model output and decodes the field mapping.
// Missing keys default to empty strings; the optional amount and contact
// fields default to the NotSpecified placeholder, matching what the prompt
// instructs the model to emit.
func parseExtraction(raw string) (*Extraction, error) {
	clean := fencePattern.ReplaceAllString(strings.TrimSpace(raw), "")
	clean = strings.TrimSpace(clean)

	var ext Extraction
	if err := json.Unmarshal([]byte(clean), &ext); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	if strings.TrimSpace(ext.CompanyName) == "" {
		return nil, ErrNoCompany
	}

	if ext.Stipend == "" {
		ext.Stipend = domain.NotSpecified
	}
	if ext.CTC == "" {
		ext.CTC = domain.NotSpecified
	}
	if ext.POCName == "" {
		ext.POCName = domain.NotSpecified
	}
	if ext.POCPhone == "" {
		ext.POCPhone = domain.NotSpecified
	}

	return &ext, nil
}
