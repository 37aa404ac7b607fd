package httpclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/relayops/reqkit/httpclient"
	"github.com/relayops/reqkit/server/middleware"
)

func newClient(t *testing.T, cfg httpclient.Config) *httpclient.Client {
	t.Helper()
	c, err := httpclient.New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestClient_Do_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/widgets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "2" {
			t.Errorf("missing query parameter, got %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c := newClient(t, httpclient.Config{BaseURL: ts.URL})
	resp, err := c.Do(context.Background(), httpclient.Request{
		Method: http.MethodGet,
		Path:   "/v1/widgets",
		Query:  map[string]string{"page": "2"},
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if !resp.IsSuccess() {
		t.Errorf("expected success, got %d", resp.StatusCode)
	}
	if string(resp.Body) != `{"ok":true}` {
		t.Errorf("unexpected body %s", resp.Body)
	}
}

func TestClient_Do_JSONBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %s", ct)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if payload["name"] != "widget" {
			t.Errorf("unexpected payload %v", payload)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	c := newClient(t, httpclient.Config{BaseURL: ts.URL})
	resp, err := c.Do(context.Background(), httpclient.Request{
		Method: http.MethodPost,
		Path:   "/v1/widgets",
		Body:   map[string]string{"name": "widget"},
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
}

func TestClient_Do_PropagatesCorrelationID(t *testing.T) {
	var gotHeader string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Correlation-Id")
	}))
	defer ts.Close()

	c := newClient(t, httpclient.Config{BaseURL: ts.URL})
	ctx := middleware.WithCorrelationID(context.Background(), "corr-outbound")
	if _, err := c.Do(ctx, httpclient.Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotHeader != "corr-outbound" {
		t.Errorf("expected correlation header forwarded, got %q", gotHeader)
	}
}

func TestClient_Do_ExplicitHeaderWins(t *testing.T) {
	var gotHeader string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Correlation-Id")
	}))
	defer ts.Close()

	c := newClient(t, httpclient.Config{BaseURL: ts.URL})
	ctx := middleware.WithCorrelationID(context.Background(), "from-context")
	_, err := c.Do(ctx, httpclient.Request{
		Method:  http.MethodGet,
		Path:    "/",
		Headers: map[string]string{"X-Correlation-Id": "explicit"},
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotHeader != "explicit" {
		t.Errorf("expected explicit header to win, got %q", gotHeader)
	}
}

func TestClient_Do_ClassifiesStatus(t *testing.T) {
	cases := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{http.StatusNotFound, httpclient.IsNotFound, "not found"},
		{http.StatusTooManyRequests, httpclient.IsRateLimit, "rate limit"},
		{http.StatusInternalServerError, httpclient.IsServerError, "server error"},
	}
	for _, tc := range cases {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))
		c := newClient(t, httpclient.Config{BaseURL: ts.URL})
		_, err := c.Do(context.Background(), httpclient.Request{Method: http.MethodGet, Path: "/"})
		if err == nil {
			t.Errorf("%s: expected an error", tc.name)
		} else if !tc.check(err) {
			t.Errorf("%s: misclassified: %v", tc.name, err)
		}
		ts.Close()
	}
}

func TestClient_Do_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	c := newClient(t, httpclient.Config{BaseURL: ts.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Do(ctx, httpclient.Request{Method: http.MethodGet, Path: "/slow"})
	if !httpclient.IsTimeout(err) {
		t.Errorf("expected a timeout error, got %v", err)
	}
}

func TestClient_Do_ConnectionRefused(t *testing.T) {
	c := newClient(t, httpclient.Config{BaseURL: "http://127.0.0.1:1"})
	_, err := c.Do(context.Background(), httpclient.Request{Method: http.MethodGet, Path: "/"})
	if !httpclient.IsConnection(err) {
		t.Errorf("expected a connection error, got %v", err)
	}
}

func TestConfig_Defaults(t *testing.T) {
	var cfg httpclient.Config
	cfg.ApplyDefaults()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s default timeout, got %v", cfg.Timeout)
	}
	if cfg.CorrelationHeader != "X-Correlation-Id" {
		t.Errorf("expected default correlation header, got %q", cfg.CorrelationHeader)
	}
}
