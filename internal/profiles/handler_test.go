package profiles_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"discovery-backend/internal/bootstrap"
	"discovery-backend/internal/shared/config"
)

func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}

const profileBody = `{
	"basic": {"employmentType": "federal", "yearsToRetirement": 4},
	"values": {"ranked": ["security", "family"]},
	"goals": {"goals": [
		{"label": "retire at 62", "category": "retirement_timing", "priority": "HIGH", "timeHorizon": "SHORT"}
	]}
}`

func TestProfileSaveAndInsightsFlow(t *testing.T) {
	router := newTestApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(profileBody))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("save profile: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var saved struct {
		ID      string `json:"id"`
		Profile struct {
			Basic struct {
				EmploymentType string `json:"employmentType"`
			} `json:"basic"`
		} `json:"profile"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected generated profile id")
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	addGuestHeader(reqGet)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("get profile: expected 200, got %d", respGet.Code)
	}

	var insightsResp struct {
		Insights struct {
			StrategyProfile struct {
				Summary string `json:"summary"`
			} `json:"strategyProfile"`
			FocusAreas struct {
				Rankings []struct {
					Domain string `json:"domain"`
					Rank   int    `json:"rank"`
				} `json:"rankings"`
			} `json:"focusAreas"`
			Actions []struct {
				ID string `json:"id"`
			} `json:"actions"`
		} `json:"insights"`
		Cached bool `json:"cached"`
	}

	reqIns := httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil)
	addGuestHeader(reqIns)
	respIns := httptest.NewRecorder()
	router.ServeHTTP(respIns, reqIns)
	if respIns.Code != http.StatusOK {
		t.Fatalf("insights: expected 200, got %d: %s", respIns.Code, respIns.Body.String())
	}
	if err := json.NewDecoder(respIns.Body).Decode(&insightsResp); err != nil {
		t.Fatalf("decode insights: %v", err)
	}
	if insightsResp.Cached {
		t.Fatalf("first insights call must compute, not hit a snapshot")
	}
	if insightsResp.Insights.StrategyProfile.Summary == "" {
		t.Fatalf("expected a strategy summary")
	}
	if len(insightsResp.Insights.FocusAreas.Rankings) == 0 {
		t.Fatalf("expected focus rankings")
	}
	if len(insightsResp.Insights.Actions) == 0 {
		t.Fatalf("expected recommended actions")
	}

	reqIns2 := httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil)
	addGuestHeader(reqIns2)
	respIns2 := httptest.NewRecorder()
	router.ServeHTTP(respIns2, reqIns2)
	if respIns2.Code != http.StatusOK {
		t.Fatalf("insights (again): expected 200, got %d", respIns2.Code)
	}
	if err := json.NewDecoder(respIns2.Body).Decode(&insightsResp); err != nil {
		t.Fatalf("decode insights (again): %v", err)
	}
	if !insightsResp.Cached {
		t.Fatalf("unchanged profile should serve the stored snapshot")
	}
}

func TestInsightsPreviewDoesNotRequireSavedProfile(t *testing.T) {
	router := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/insights/preview", strings.NewReader(profileBody))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("preview: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	addGuestHeader(reqGet)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusNotFound {
		t.Fatalf("preview must not persist a profile, got %d", respGet.Code)
	}
}

func TestInsightsWithoutProfileReturns404(t *testing.T) {
	router := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without a profile, got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Code != "not_found" {
		t.Fatalf("expected code not_found, got %q", envelope.Error.Code)
	}
}

func TestSaveProfileValidationError(t *testing.T) {
	router := newTestApp(t)

	body := `{"basic": {"age": -5}}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				Field string `json:"field"`
			} `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %q", envelope.Error.Code)
	}
	if envelope.Error.Details.Field != "basic.age" {
		t.Fatalf("expected field basic.age, got %q", envelope.Error.Details.Field)
	}
}

func TestRequestsWithoutIdentityRejected(t *testing.T) {
	router := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", resp.Code)
	}
}
