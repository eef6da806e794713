package survey_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suppai-backend/internal/bootstrap"
	"suppai-backend/internal/shared/config"
	"suppai-backend/internal/shared/server/respond"
	"suppai-backend/internal/survey"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		Env:             "dev",
		LogLevel:        "error",
		LogFormat:       "json",
		PackageImageURL: "https://example.com/package.jpg",
	})
	require.NoError(t, err)
	return app.Router
}

func validSurvey() map[string]any {
	return map[string]any{
		"energy":      1,
		"gut_health":  1,
		"muscle_gain": 1,
		"stress":      1,
		"sleep":       1,
		"allergies":   1,
		"autoimmune":  1,
		"skin":        1,
		"digestion":   1,
		"country":     "France",
	}
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRecommendEmptyResult(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/recommend", validSurvey())
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()

	var result survey.RecommendationResult
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	assert.Equal(t, "https://example.com/package.jpg", result.PackageImageURL)
	assert.Empty(t, result.Recommendations)

	// The recommendations field must serialize as [], not null.
	assert.Contains(t, body, `"recommendations":[]`)
}

func TestRecommendHighEnergy(t *testing.T) {
	router := newTestRouter(t)

	payload := validSurvey()
	payload["energy"] = 5

	resp := postJSON(t, router, "/recommend", payload)
	require.Equal(t, http.StatusOK, resp.Code)

	var result survey.RecommendationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Magnesium Glycinate", result.Recommendations[0].Name)
	assert.NotEmpty(t, result.Recommendations[0].Sources)
}

func TestRecommendCountryDeficiency(t *testing.T) {
	router := newTestRouter(t)

	payload := validSurvey()
	payload["country"] = "Uk"

	resp := postJSON(t, router, "/recommend", payload)
	require.Equal(t, http.StatusOK, resp.Code)

	var result survey.RecommendationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Vitamin D3 (cholecalciferol)", result.Recommendations[0].Name)
}

func TestRecommendRatingBoundaries(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name   string
		energy int
		status int
	}{
		{"below_range", 0, http.StatusUnprocessableEntity},
		{"lower_bound", 1, http.StatusOK},
		{"upper_bound", 5, http.StatusOK},
		{"above_range", 6, http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validSurvey()
			payload["energy"] = tc.energy

			resp := postJSON(t, router, "/recommend", payload)
			assert.Equal(t, tc.status, resp.Code)
		})
	}
}

func TestRecommendValidationDetails(t *testing.T) {
	router := newTestRouter(t)

	payload := validSurvey()
	payload["energy"] = 6
	payload["email"] = "not-an-email"

	resp := postJSON(t, router, "/recommend", payload)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	var body struct {
		Error struct {
			Code    string               `json:"code"`
			Details []respond.FieldError `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "validation_error", body.Error.Code)

	fields := make(map[string]string, len(body.Error.Details))
	for _, d := range body.Error.Details {
		fields[d.Field] = d.Rule
	}
	assert.Equal(t, "max", fields["energy"])
	assert.Equal(t, "email", fields["email"])
}

func TestRecommendMissingCountry(t *testing.T) {
	router := newTestRouter(t)

	payload := validSurvey()
	delete(payload, "country")

	resp := postJSON(t, router, "/recommend", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestRecommendMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/recommend", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestRecommendOptionalEmailAccepted(t *testing.T) {
	router := newTestRouter(t)

	payload := validSurvey()
	payload["email"] = "user@example.com"

	resp := postJSON(t, router, "/recommend", payload)
	assert.Equal(t, http.StatusOK, resp.Code)
}
