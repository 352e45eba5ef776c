package delivery

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	intakedomain "gecawings-backend/internal/intake/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIntakeUsecase struct {
	saveErr error
}

func (f *fakeIntakeUsecase) SaveHealthProfile(profile *intakedomain.HealthProfile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	profile.ID = 7
	return nil
}

func (f *fakeIntakeUsecase) SaveLifestyleEntry(entry *intakedomain.LifestyleEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	entry.ID = 8
	return nil
}

func (f *fakeIntakeUsecase) SaveLabRecord(record *intakedomain.LabRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	record.ID = 9
	return nil
}

func setupRouter(uc *fakeIntakeUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewIntakeHandler(uc)
	r := gin.New()
	r.POST("/api/saveHealthProfile", h.SaveHealthProfile)
	r.POST("/api/saveLifestyle", h.SaveLifestyle)
	r.POST("/api/saveLabRecord", h.SaveLabRecord)
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

func TestSaveHealthProfileEchoesRow(t *testing.T) {
	r := setupRouter(&fakeIntakeUsecase{})

	w, body := postJSON(r, "/api/saveHealthProfile", gin.H{
		"age":           30,
		"weight":        70.5,
		"height":        175.0,
		"bloodPressure": "120/80",
		"conditions":    "none",
		"medications":   "none",
	})

	require.Equal(t, http.StatusOK, w.Code)
	// Generated id plus every submitted field, unchanged
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, float64(30), body["age"])
	assert.Equal(t, 70.5, body["weight"])
	assert.Equal(t, 175.0, body["height"])
	assert.Equal(t, "120/80", body["bloodPressure"])
	assert.Equal(t, "none", body["conditions"])
	assert.Equal(t, "none", body["medications"])
}

func TestSaveLifestyleEchoesRow(t *testing.T) {
	r := setupRouter(&fakeIntakeUsecase{})

	w, body := postJSON(r, "/api/saveLifestyle", gin.H{
		"exercise":     3,
		"smoking":      0,
		"drinking":     1,
		"bmi":          "Normal",
		"jobHazard":    2,
		"mentalStress": 4,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(8), body["id"])
	assert.Equal(t, float64(3), body["exercise"])
	assert.Equal(t, "Normal", body["bmi"])
	assert.Equal(t, float64(4), body["mentalStress"])
}

func TestSaveLabRecordEchoesRow(t *testing.T) {
	r := setupRouter(&fakeIntakeUsecase{})

	w, body := postJSON(r, "/api/saveLabRecord", gin.H{
		"testName":       "HbA1c",
		"testDate":       "2026-08-01",
		"resultValue":    "5.4",
		"referenceRange": "4.0-5.6",
		"doctorNotes":    "within range",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(9), body["id"])
	assert.Equal(t, "HbA1c", body["testName"])
	assert.Equal(t, "within range", body["doctorNotes"])
}

func TestSaveHealthProfileDBError(t *testing.T) {
	r := setupRouter(&fakeIntakeUsecase{saveErr: errors.New("insert failed")})

	w, body := postJSON(r, "/api/saveHealthProfile", gin.H{"age": 30})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to save health profile", body["message"])
}
