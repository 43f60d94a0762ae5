package webserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cnt "github.com/R3DPanda1/envmon/controllers"
	"github.com/R3DPanda1/envmon/models"
	repo "github.com/R3DPanda1/envmon/repositories"
)

func newServer(t *testing.T) (*WebServer, cnt.MonitorController) {
	t.Helper()
	cfg := &models.ServerConfig{Monitor: models.MonitorConfig{TickInterval: "1ms"}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	controller := cnt.NewMonitorController(repo.NewMonitorRepository())
	controller.GetInstance(*cfg)
	ws, err := NewWebServer(cfg, controller)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { controller.Stop() })
	return ws, controller
}

func do(ws *WebServer, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ws.Router.ServeHTTP(w, req)
	return w
}

func TestStartStopStatus(t *testing.T) {
	ws, _ := newServer(t)

	if w := do(ws, http.MethodGet, "/api/status", ""); w.Code != http.StatusOK || w.Body.String() != "false" {
		t.Fatalf("status: %d %s", w.Code, w.Body.String())
	}
	if w := do(ws, http.MethodGet, "/api/start", ""); w.Body.String() != "true" {
		t.Fatalf("start: %s", w.Body.String())
	}
	if w := do(ws, http.MethodGet, "/api/start", ""); w.Body.String() != "false" {
		t.Errorf("second start should report false, got %s", w.Body.String())
	}
	if w := do(ws, http.MethodGet, "/api/status", ""); w.Body.String() != "true" {
		t.Errorf("expected running, got %s", w.Body.String())
	}

	w := do(ws, http.MethodGet, "/api/panel", "")
	var panel struct {
		Running bool `json:"running"`
		Machine struct {
			State string `json:"state"`
		} `json:"machine"`
		Sim struct {
			Lines []string `json:"lines"`
		} `json:"sim"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &panel); err != nil {
		t.Fatalf("panel: %v", err)
	}
	if !panel.Running || panel.Machine.State != "locked" {
		t.Errorf("unexpected panel %+v", panel)
	}
	if len(panel.Sim.Lines) != 2 || panel.Sim.Lines[0] != "Enter password:" {
		t.Errorf("expected the prompt on the display, got %q", panel.Sim.Lines)
	}

	if w := do(ws, http.MethodGet, "/api/stop", ""); w.Body.String() != "true" {
		t.Errorf("stop: %s", w.Body.String())
	}
}

func TestPanelInputs(t *testing.T) {
	ws, _ := newServer(t)

	tests := []struct {
		name string
		path string
		body string
		code int
	}{
		{"keys while stopped", "/api/key", `{"keys":"0690#"}`, http.StatusConflict},
		{"climate", "/api/climate", `{"temperature":25.5,"humidity":30}`, http.StatusOK},
		{"climate missing field", "/api/climate", `{"temperature":25.5}`, http.StatusBadRequest},
		{"climate bad json", "/api/climate", `{`, http.StatusBadRequest},
		{"lux", "/api/light", `{"lux":300}`, http.StatusOK},
		{"analog", "/api/light", `{"analog":4000}`, http.StatusOK},
		{"negative lux", "/api/light", `{"lux":-1}`, http.StatusBadRequest},
		{"empty light", "/api/light", `{}`, http.StatusBadRequest},
		{"infrared", "/api/infrared", `{"on":true}`, http.StatusOK},
		{"hall", "/api/hall", `{"on":true}`, http.StatusOK},
		{"fault", "/api/fault", `{"on":false}`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(ws, http.MethodPost, tt.path, tt.body); w.Code != tt.code {
				t.Errorf("expected %d, got %d: %s", tt.code, w.Code, w.Body.String())
			}
		})
	}
}

func TestKeysWhileRunning(t *testing.T) {
	ws, _ := newServer(t)
	do(ws, http.MethodGet, "/api/start", "")

	if w := do(ws, http.MethodPost, "/api/key", `{"keys":"06"}`); w.Code != http.StatusOK {
		t.Errorf("expected keys accepted, got %d: %s", w.Code, w.Body.String())
	}
	if w := do(ws, http.MethodPost, "/api/key", `{"keys":"x"}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected an unknown key to be rejected, got %d", w.Code)
	}
}

func TestScenarioRoutes(t *testing.T) {
	ws, _ := newServer(t)

	w := do(ws, http.MethodGet, "/api/scenarios", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "heatwave") {
		t.Fatalf("scenarios: %d %s", w.Code, w.Body.String())
	}
	if w := do(ws, http.MethodPost, "/api/scenario", `{"name":"nope"}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected an unknown scenario to be rejected, got %d", w.Code)
	}
	if w := do(ws, http.MethodPost, "/api/scenario", `{"name":"dusk"}`); w.Code != http.StatusOK {
		t.Errorf("expected dusk to load, got %d: %s", w.Code, w.Body.String())
	}
	if w := do(ws, http.MethodPost, "/api/scenario", `{"script":"function Step(t) { return {}; }"}`); w.Code != http.StatusOK {
		t.Errorf("expected a custom script to load, got %d: %s", w.Code, w.Body.String())
	}
	if w := do(ws, http.MethodPost, "/api/scenario", `{}`); w.Code != http.StatusOK {
		t.Errorf("expected the scenario to stop, got %d", w.Code)
	}
}

func TestEventTopics(t *testing.T) {
	ws, _ := newServer(t)
	do(ws, http.MethodGet, "/api/start", "")

	if w := do(ws, http.MethodGet, "/api/events/bogus", ""); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown topic, got %d", w.Code)
	}

	w := do(ws, http.MethodGet, "/api/events/system", "")
	var body struct {
		Topic  string                   `json:"topic"`
		Events []map[string]interface{} `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Topic != "system" || len(body.Events) == 0 {
		t.Errorf("expected system history, got %+v", body)
	}

	w = do(ws, http.MethodGet, "/api/events/access", "")
	if !strings.Contains(w.Body.String(), `"events":[]`) {
		t.Errorf("expected an empty list, got %s", w.Body.String())
	}
}

func TestRootRedirectsToDashboard(t *testing.T) {
	ws, _ := newServer(t)
	w := do(ws, http.MethodGet, "/", "")
	if w.Code != http.StatusMovedPermanently || w.Header().Get("Location") != "/dashboard" {
		t.Errorf("expected redirect to /dashboard, got %d %q", w.Code, w.Header().Get("Location"))
	}
}
