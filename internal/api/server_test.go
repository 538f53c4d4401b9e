package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizstart-workers/internal/common/bizinfo"
	apperrors "bizstart-workers/internal/common/errors"
	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/models"
	resolvelocation "bizstart-workers/internal/workers/location/resolve-location"
	matchpolicyfunds "bizstart-workers/internal/workers/policy/match-policy-funds"
	analyzeviability "bizstart-workers/internal/workers/viability/analyze-viability"
	estimatestartupcost "bizstart-workers/internal/workers/viability/estimate-startup-cost"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubListings struct {
	items []models.RawListingItem
	err   error
}

func (s stubListings) SearchStartupFunds(ctx context.Context, q bizinfo.StartupQuery) ([]models.RawListingItem, error) {
	return s.items, s.err
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    *models.Meta    `json:"meta"`
	Error   *struct {
		Code       string `json:"code"`
		Message    string `json:"message"`
		Suggestion string `json:"suggestion"`
	} `json:"error"`
}

func newTestServer(t *testing.T, listings stubListings, probes map[string]Probe) *Server {
	t.Helper()
	log := logger.NewTestLogger(t)
	estimator := estimatestartupcost.NewEstimator(nil)
	return NewServer(
		analyzeviability.NewHandler(analyzeviability.LoadConfig(), nil, estimator, nil, log),
		estimatestartupcost.NewHandler(estimatestartupcost.LoadConfig(), nil, nil, log),
		matchpolicyfunds.NewHandler(matchpolicyfunds.LoadConfig(), listings, nil, log),
		resolvelocation.NewHandler(resolvelocation.LoadConfig(), nil, nil, log),
		Options{Probes: probes},
		log,
	)
}

func post(t *testing.T, router http.Handler, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestRoutes_Success(t *testing.T) {
	listings := stubListings{items: []models.RawListingItem{{
		ID:       "PBLN_1",
		Title:    "창업 바우처 지원",
		Summary:  "최대 5천만원 바우처",
		Period:   "20240101~20240201",
		URL:      "/view.do?pblancId=PBLN_1",
		Hashtags: "창업",
	}}}
	router := newTestServer(t, listings, nil).Router()

	tests := []struct {
		name string
		path string
		body string
		key  string
	}{
		{"viability", "/api/v1/viability", `{"businessType":"카페","region":"서울"}`, "breakEven"},
		{"startup cost", "/api/v1/startup-cost", `{"businessType":"카페","region":"서울","size":15}`, "totalCost"},
		{"policy funds", "/api/v1/policy-funds", `{"businessType":"카페","stage":"예비창업","region":"서울"}`, "matchedFunds"},
		{"location", "/api/v1/locations/resolve", `{"location":"강남역"}`, "coordinates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := post(t, router, tt.path, tt.body)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, env.Success)
			require.NotNil(t, env.Meta)
			assert.NotEmpty(t, env.Meta.Source)
			assert.Nil(t, env.Error)

			var data map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Contains(t, data, tt.key)
		})
	}
}

func TestRoutes_FailureStatus(t *testing.T) {
	listings := stubListings{err: bizinfo.ErrCredentialMissing}
	router := newTestServer(t, listings, nil).Router()

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"malformed body", "/api/v1/viability", `{"businessType":`, http.StatusBadRequest, "INVALID_INPUT"},
		{"wrong field type", "/api/v1/startup-cost", `{"businessType":"카페","region":"서울","size":"big"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"schema violation", "/api/v1/policy-funds", `{"businessType":"카페","stage":"폐업","region":"서울"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"unrecognized type uses default", "/api/v1/startup-cost", `{"businessType":"꽃집","region":"서울","size":15,"interiorLevel":"standard"}`, http.StatusOK, ""},
		{"upstream failure", "/api/v1/policy-funds", `{"businessType":"카페","stage":"초기창업","region":"서울"}`, http.StatusBadGateway, "POLICY_FUND_MATCH_FAILED"},
		{"location not found", "/api/v1/locations/resolve", `{"location":"성수동 카페거리"}`, http.StatusNotFound, "LOCATION_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := post(t, router, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode == "" {
				return
			}
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.NotEmpty(t, env.Error.Suggestion)
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusOK, StatusFor(models.NewSuccess(nil, "src", "")))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(models.NewFailure(errors.New("boom"))))
	assert.Equal(t, http.StatusBadRequest, StatusFor(models.NewFailure(apperrors.NewUnknownBusinessTypeError("꽃집", []string{"카페"}))))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(models.NewFailure(apperrors.NewAnalysisFailedError(errors.New("nan")))))
}

func TestHealth(t *testing.T) {
	router := newTestServer(t, stubListings{}, nil).Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestReady(t *testing.T) {
	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("redis ping failed: connection refused") }

	tests := []struct {
		name       string
		probes     map[string]Probe
		wantStatus int
		wantState  string
	}{
		{"no probes", nil, http.StatusOK, "ready"},
		{"all up", map[string]Probe{"zeebe": ok, "redis": ok}, http.StatusOK, "ready"},
		{"redis down", map[string]Probe{"zeebe": ok, "redis": down}, http.StatusServiceUnavailable, "not ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestServer(t, stubListings{}, tt.probes).Router()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			var body struct {
				Status string            `json:"status"`
				Checks map[string]string `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantState, body.Status)
			assert.Len(t, body.Checks, len(tt.probes))
		})
	}
}

func TestMetricsAndCORS(t *testing.T) {
	router := newTestServer(t, stubListings{}, nil).Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
