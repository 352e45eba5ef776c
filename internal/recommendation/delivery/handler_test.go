package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	recodomain "gecawings-backend/internal/recommendation/domain"
	recodto "gecawings-backend/internal/recommendation/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecommendationUsecase struct {
	generateErr error
	saveErr     error
	text        string
}

func (f *fakeRecommendationUsecase) Generate(ctx context.Context, data *recodto.HealthData) (string, error) {
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return f.text, nil
}

func (f *fakeRecommendationUsecase) Save(text string) (*recodomain.Recommendation, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	return &recodomain.Recommendation{ID: 3, Recommendation: text}, nil
}

func setupRouter(uc *fakeRecommendationUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRecommendationHandler(uc)
	r := gin.New()
	r.POST("/api/generateRecommendation", h.GenerateRecommendation)
	r.POST("/api/saveRecommendation", h.SaveRecommendation)
	return r
}

func postJSON(r *gin.Engine, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	return w, parsed
}

func TestGenerateRecommendation(t *testing.T) {
	r := setupRouter(&fakeRecommendationUsecase{text: "Plan A through Plan F"})

	w, body := postJSON(r, "/api/generateRecommendation", gin.H{
		"age":           30,
		"weight":        70.5,
		"height":        175,
		"bloodPressure": "120/80",
		"conditions":    "none",
		"medications":   "none",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Plan A through Plan F", body["recommendation"])
}

func TestGenerateRecommendationUpstreamFailure(t *testing.T) {
	r := setupRouter(&fakeRecommendationUsecase{generateErr: recodomain.ErrUpstream})

	w, body := postJSON(r, "/api/generateRecommendation", gin.H{"age": 30})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to generate recommendation", body["message"])
}

func TestSaveRecommendation(t *testing.T) {
	r := setupRouter(&fakeRecommendationUsecase{})

	w, body := postJSON(r, "/api/saveRecommendation", gin.H{
		"recommendation": "Plan A",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), body["id"])
	assert.Equal(t, "Plan A", body["recommendation"])
}

func TestSaveRecommendationDBError(t *testing.T) {
	r := setupRouter(&fakeRecommendationUsecase{saveErr: recodomain.ErrUpstream})

	w, body := postJSON(r, "/api/saveRecommendation", gin.H{
		"recommendation": "Plan A",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to save recommendation", body["message"])
}
