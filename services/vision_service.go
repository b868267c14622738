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

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// FoodAnalysis is the structured nutrition estimate for an uploaded image.
// Macro strings keep the backend's free-form units ("35g").
type FoodAnalysis struct {
	FoodName    string  `json:"food_name"`
	Calories    float64 `json:"calories"`
	Protein     *string `json:"protein"`
	Carbs       *string `json:"carbs"`
	Fats        *string `json:"fats"`
	Confidence  *string `json:"confidence"`
	Description *string `json:"description"`
}

const visionPrompt = `You are a professional nutritionist.

Analyze this food image.

Return ONLY valid JSON:

{
 "food_name": "",
 "calories": number,
 "protein": "Xg",
 "carbs": "Xg",
 "fats": "Xg",
 "confidence": "high/medium/low",
 "description": ""
}

Estimate based on visible portion.
Combine multiple foods.
No markdown.
No extra text.`

// VisionService estimates nutrition from a food photo via the Gemini
// generateContent endpoint.
type VisionService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewVisionService(apiKey, model string) *VisionService {
	return &VisionService{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// AnalyzeFoodImage sends the image inline with the nutritionist prompt and
// maps the model's JSON reply onto a FoodAnalysis. A 429 from the backend
// surfaces as ErrQuotaExceeded; anything unusable as ErrAnalysisFailed.
func (s *VisionService) AnalyzeFoodImage(ctx context.Context, imageData []byte, mimeType string) (*FoodAnalysis, error) {
	body := map[string]interface{}{
		"contents": []map[string]interface{}{{
			"parts": []map[string]interface{}{
				{"text": visionPrompt},
				{"inline_data": map[string]interface{}{
					"mime_type": mimeType,
					"data":      base64.StdEncoding.EncodeToString(imageData),
				}},
			},
		}},
		"generationConfig": map[string]interface{}{"temperature": 0.2},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrQuotaExceeded
	}
	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Warn("vision backend returned an error")
		return nil, fmt.Errorf("%w: status %d", ErrAnalysisFailed, resp.StatusCode)
	}

	text := gjson.GetBytes(raw, "candidates.0.content.parts.0.text").String()
	if text == "" {
		return nil, ErrAnalysisFailed
	}

	// The model occasionally wraps its reply in a markdown fence despite
	// the prompt.
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	parsed := gjson.Parse(text)
	if !parsed.IsObject() {
		return nil, ErrAnalysisFailed
	}

	analysis := &FoodAnalysis{
		FoodName:    parsed.Get("food_name").String(),
		Calories:    parsed.Get("calories").Float(),
		Protein:     optString(parsed.Get("protein")),
		Carbs:       optString(parsed.Get("carbs")),
		Fats:        optString(parsed.Get("fats")),
		Confidence:  optString(parsed.Get("confidence")),
		Description: optString(parsed.Get("description")),
	}
	if analysis.FoodName == "" {
		analysis.FoodName = "Unknown"
	}
	if analysis.Calories == 0 {
		analysis.Calories = 200
	}
	if analysis.Confidence == nil {
		confidence := "medium"
		analysis.Confidence = &confidence
	}
	return analysis, nil
}

func optString(r gjson.Result) *string {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	v := r.String()
	return &v
}
