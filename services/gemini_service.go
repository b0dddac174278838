package services

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

	"github.com/Guillo-bit/NutrIA/config"
	"github.com/Guillo-bit/NutrIA/utils"

	"go.uber.org/zap"
)

// detectionPrompt asks the model for a machine-readable list. The reply still
// goes through a fallback parser because models do not always comply.
const detectionPrompt = `Identify food and ingredients present in the image and give the names of each back in a JSON format like: {"foods": ["apple", "banana", "rice"]}. Only return the JSON, no additional text.`

type GeminiService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	log     *zap.Logger
}

// NewGeminiService initializes the Gemini adapter with credentials and HTTP client
func NewGeminiService(cfg *config.Config, log *zap.Logger) *GeminiService {
	return &GeminiService{
		apiKey:  cfg.GeminiAPIKey,
		baseURL: cfg.GeminiBaseURL,
		model:   cfg.GeminiModel,
		client:  &http.Client{Timeout: 60 * time.Second},
		log:     log,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string           `json:"text,omitempty"`
	InlineData *geminiImageData `json:"inline_data,omitempty"`
}

type geminiImageData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

// DetectFoods sends the image to the generateContent endpoint and returns the
// food names found in the reply. Detection order is the reply order.
func (s *GeminiService) DetectFoods(ctx context.Context, image []byte, mimeType string) ([]string, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	requestBody := geminiRequest{
		Contents: []geminiContent{
			{
				Parts: []geminiPart{
					{Text: detectionPrompt},
					{InlineData: &geminiImageData{
						MimeType: mimeType,
						Data:     base64.StdEncoding.EncodeToString(image),
					}},
				},
			},
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Gemini request: %w", err)
	}

	// Keep the key out of the URL: url.Error quotes the full URL on
	// transport failures and those messages reach API clients.
	u := fmt.Sprintf("%s/models/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("failed to parse Gemini JSON: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no candidates in Gemini response")
	}

	// The model may split its reply across parts.
	var replyText string
	for _, part := range gr.Candidates[0].Content.Parts {
		replyText += part.Text
	}
	reply := strings.TrimSpace(replyText)
	s.log.Info("model reply", zap.String("reply", reply))

	foods, ok := utils.ExtractFoodsJSON(reply)
	if !ok {
		s.log.Warn("failed to parse JSON from model reply, using fallback method")
		foods = utils.FoodNamesFromText(reply)
	}

	s.log.Info("foods detected", zap.Strings("foods", foods))
	return foods, nil
}
