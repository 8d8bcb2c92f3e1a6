package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	assistantHTTP "jarvis-assistant/internal/assistant/delivery/http"
	"jarvis-assistant/internal/assistant/usecase"
	"jarvis-assistant/internal/middleware"
	"jarvis-assistant/internal/model"
	"jarvis-assistant/internal/router"
	"jarvis-assistant/pkg/log"
	"jarvis-assistant/pkg/telemetry"
)

type fakeTelemetry struct{}

func (fakeTelemetry) Host(ctx context.Context) (telemetry.HostSnapshot, error) {
	return telemetry.HostSnapshot{System: "Linux", Release: "6.1", Machine: "x86_64", CPUCount: 4}, nil
}

func (fakeTelemetry) Battery(ctx context.Context) telemetry.BatteryReading {
	return telemetry.BatteryReading{Availability: telemetry.BatteryNoSensor}
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

var greetings = map[string]bool{
	"Good day, Sir. How may I assist you?":     true,
	"At your service, Sir. What do you need?":  true,
	"Hello, Sir. JARVIS is online and ready.":  true,
	"Greetings, Sir. All systems operational.": true,
	"Welcome back, Sir. How can I help?":       true,
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	uc := usecase.New(l, router.New(l), fakeTelemetry{}, model.Identity{
		Name:     "JARVIS",
		FullName: "Just A Rather Very Intelligent System",
		Version:  "1.0.0",
		Active:   true,
	})

	r := gin.New()
	assistantHTTP.RegisterRoutes(r.Group("/api"), assistantHTTP.New(l, uc), middleware.New(l, middleware.Config{}))
	return r
}

func post(t *testing.T, r *gin.Engine, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal error: %v (body %s)", err, w.Body.String())
	}
	return w, env
}

func TestSubmitCommand(t *testing.T) {
	r := newTestEngine()

	t.Run("Greeting", func(t *testing.T) {
		w, env := post(t, r, "/api/command", `{"command": "hello"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var data struct {
			Response string `json:"response"`
			Type     string `json:"type"`
			Data     any    `json:"data"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("unmarshal data: %v", err)
		}
		if data.Type != "greeting" {
			t.Errorf("expected greeting, got %s", data.Type)
		}
		if !greetings[data.Response] {
			t.Errorf("unexpected greeting %q", data.Response)
		}
		if data.Data != nil {
			t.Errorf("expected null data, got %v", data.Data)
		}
	})

	t.Run("Search Payload", func(t *testing.T) {
		_, env := post(t, r, "/api/command", `{"command": "please search for cats"}`)

		var data struct {
			Type string `json:"type"`
			Data struct {
				Query string `json:"query"`
			} `json:"data"`
		}
		json.Unmarshal(env.Data, &data)
		if data.Type != "search" || data.Data.Query != "for cats" {
			t.Errorf("unexpected search response %+v", data)
		}
	})

	t.Run("Empty Command", func(t *testing.T) {
		for _, body := range []string{`{"command": ""}`, `{"command": "   "}`, `{}`, `not json`} {
			w, env := post(t, r, "/api/command", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("body %s: expected 400, got %d", body, w.Code)
			}
			if env.Message != "No command provided" {
				t.Errorf("body %s: unexpected message %q", body, env.Message)
			}
		}
	})
}

func TestClassify(t *testing.T) {
	r := newTestEngine()

	w, env := post(t, r, "/api/classify", `{"command": "restart search now"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var data struct {
		Intent  string `json:"intent"`
		Keyword string `json:"keyword"`
		Rule    int    `json:"rule"`
	}
	json.Unmarshal(env.Data, &data)
	if data.Intent != "search" || data.Keyword != "search" || data.Rule != 7 {
		t.Errorf("unexpected classification %+v", data)
	}
}

func TestStatus(t *testing.T) {
	r := newTestEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var env envelope
	json.Unmarshal(w.Body.Bytes(), &env)

	var data struct {
		Name      string `json:"name"`
		Version   string `json:"version"`
		Active    bool   `json:"active"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data.Name != "JARVIS" || data.Version != "1.0.0" || !data.Active {
		t.Errorf("unexpected identity %+v", data)
	}
	if _, err := time.Parse(time.RFC3339Nano, data.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", data.Timestamp, err)
	}
}
