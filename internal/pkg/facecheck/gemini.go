package facecheck

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-3-flash-preview"

	verifyPrompt = "Analyze this image. Is it a clear selfie of a human face" +
		" for an attendance system check-in? Answer only 'YES' or 'NO'."
)

var quotePrompts = map[QuoteKind]string{
	QuoteOnTime: "Generate a short, positive, and encouraging English quote for" +
		" an employee who arrived on time. Focus on professionalism and starting the day right.",
	QuoteLate: "Generate a short, motivational English quote for an employee who" +
		" arrived late. Focus on punctuality as a virtue and making the most of the rest of the day.",
	QuoteCheckOut: "Generate a warm, appreciative English quote for an employee" +
		" finishing their work day. Focus on rest and work-life balance.",
}

// GeminiClient calls the Gemini generateContent REST API with an API key.
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

func NewGeminiClient(apiKey string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		apiKey:     apiKey,
	}
}

// APIError represents a Gemini API error response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API error [%d]: %s", e.StatusCode, e.Message)
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) VerifyFace(ctx context.Context, photo []byte, mimeType string) (bool, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	req := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(photo),
				}},
				{Text: verifyPrompt},
			},
		}},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return false, err
	}

	return strings.Contains(strings.ToUpper(strings.TrimSpace(text)), "YES"), nil
}

func (c *GeminiClient) MotivationalQuote(ctx context.Context, kind QuoteKind) (string, error) {
	prompt, ok := quotePrompts[kind]
	if !ok {
		prompt = quotePrompts[QuoteCheckOut]
	}

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(text), `"`), nil
}

func (c *GeminiClient) generate(ctx context.Context, reqBody generateRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
