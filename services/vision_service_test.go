package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVisionService(handler http.HandlerFunc) (*VisionService, *httptest.Server) {
	server := httptest.NewServer(handler)
	svc := &VisionService{
		apiKey:  "test-key",
		model:   "test-model",
		baseURL: server.URL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
	return svc, server
}

func geminiReply(text string) []byte {
	body := map[string]interface{}{
		"candidates": []map[string]interface{}{{
			"content": map[string]interface{}{
				"parts": []map[string]interface{}{{"text": text}},
			},
		}},
	}
	raw, _ := json.Marshal(body)
	return raw
}

func TestAnalyzeFoodImageParsesFencedJSON(t *testing.T) {
	reply := "```json\n{\"food_name\": \"Masala Dosa\", \"calories\": 450, \"protein\": \"10g\", \"carbs\": \"60g\", \"fats\": \"18g\", \"confidence\": \"high\", \"description\": \"A crispy rice crepe\"}\n```"
	svc, server := newTestVisionService(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write(geminiReply(reply))
	})
	defer server.Close()

	analysis, err := svc.AnalyzeFoodImage(context.Background(), []byte("fake-image"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "Masala Dosa", analysis.FoodName)
	assert.Equal(t, 450.0, analysis.Calories)
	require.NotNil(t, analysis.Protein)
	assert.Equal(t, "10g", *analysis.Protein)
	require.NotNil(t, analysis.Confidence)
	assert.Equal(t, "high", *analysis.Confidence)
}

func TestAnalyzeFoodImageAppliesDefaults(t *testing.T) {
	svc, server := newTestVisionService(func(w http.ResponseWriter, r *http.Request) {
		w.Write(geminiReply(`{"calories": 0}`))
	})
	defer server.Close()

	analysis, err := svc.AnalyzeFoodImage(context.Background(), []byte("fake-image"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "Unknown", analysis.FoodName)
	assert.Equal(t, 200.0, analysis.Calories)
	require.NotNil(t, analysis.Confidence)
	assert.Equal(t, "medium", *analysis.Confidence)
}

func TestAnalyzeFoodImageQuotaExceeded(t *testing.T) {
	svc, server := newTestVisionService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer server.Close()

	_, err := svc.AnalyzeFoodImage(context.Background(), []byte("fake-image"), "image/jpeg")
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestAnalyzeFoodImageGarbageReply(t *testing.T) {
	svc, server := newTestVisionService(func(w http.ResponseWriter, r *http.Request) {
		w.Write(geminiReply("I cannot identify this image, sorry."))
	})
	defer server.Close()

	_, err := svc.AnalyzeFoodImage(context.Background(), []byte("fake-image"), "image/jpeg")
	assert.ErrorIs(t, err, ErrAnalysisFailed)
}

func TestAnalyzeFoodImageServerError(t *testing.T) {
	svc, server := newTestVisionService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := svc.AnalyzeFoodImage(context.Background(), []byte("fake-image"), "image/jpeg")
	assert.ErrorIs(t, err, ErrAnalysisFailed)
}
