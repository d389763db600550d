package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/stackwatch/checkstack/internal/domain"
	"github.com/stackwatch/checkstack/internal/pkg/logger"
)

func endpointConfig(baseURL string) domain.EndpointConfig {
	return domain.EndpointConfig{
		BaseURL:  baseURL,
		User:     "monitor",
		Password: "secret",
		Timeout:  2 * time.Second,
	}
}

func fetchFailure(t *testing.T, err error) *domain.Failure {
	t.Helper()
	var failure *domain.Failure
	if !errors.As(err, &failure) {
		t.Fatalf("error %v is not a *domain.Failure", err)
	}
	return failure
}

func TestFetchReturnsBodyAndSendsBasicAuth(t *testing.T) {
	var gotPath, gotUser, gotPass string
	var authOK bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, authOK = r.BasicAuth()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"green"}`))
	}))
	defer server.Close()

	client := New(logger.Nop())
	body, err := client.Fetch(context.Background(), endpointConfig(server.URL), "/_health_report")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(body) != `{"status":"green"}` {
		t.Fatalf("body = %s", body)
	}
	if gotPath != "/_health_report" {
		t.Fatalf("request path = %q", gotPath)
	}
	if !authOK || gotUser != "monitor" || gotPass != "secret" {
		t.Fatalf("basic auth not sent correctly: ok=%v user=%q", authOK, gotUser)
	}
}

func TestFetchTrimsTrailingSlashFromBaseURL(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(logger.Nop())
	if _, err := client.Fetch(context.Background(), endpointConfig(server.URL+"/"), "/api/status"); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotPath != "/api/status" {
		t.Fatalf("request path = %q, want /api/status", gotPath)
	}
}

func TestFetchClassifiesUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New(logger.Nop())
	_, err := client.Fetch(context.Background(), endpointConfig(server.URL), "/api/status")

	failure := fetchFailure(t, err)
	if failure.Kind != domain.FailureAuth {
		t.Fatalf("kind = %s, want auth", failure.Kind)
	}
	if failure.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", failure.HTTPStatus)
	}
}

func TestFetchClassifiesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(logger.Nop())
	_, err := client.Fetch(context.Background(), endpointConfig(server.URL), "/api/status")

	failure := fetchFailure(t, err)
	if failure.Kind != domain.FailureHTTPStatus {
		t.Fatalf("kind = %s, want http_status", failure.Kind)
	}
	if failure.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", failure.HTTPStatus)
	}
}

func TestFetchClassifiesInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := New(logger.Nop())
	_, err := client.Fetch(context.Background(), endpointConfig(server.URL), "/api/status")

	if failure := fetchFailure(t, err); failure.Kind != domain.FailureParse {
		t.Fatalf("kind = %s, want parse", failure.Kind)
	}
}

func TestFetchClassifiesTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cfg := endpointConfig(server.URL)
	cfg.Timeout = 20 * time.Millisecond

	client := New(logger.Nop())
	_, err := client.Fetch(context.Background(), cfg, "/api/status")

	if failure := fetchFailure(t, err); failure.Kind != domain.FailureTimeout {
		t.Fatalf("kind = %s, want timeout", failure.Kind)
	}
}

func TestFetchClassifiesConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := New(logger.Nop())
	_, err := client.Fetch(context.Background(), endpointConfig(serverURL), "/api/status")

	if failure := fetchFailure(t, err); failure.Kind != domain.FailureConnection {
		t.Fatalf("kind = %s, want connection", failure.Kind)
	}
}

func TestFetchInsecureAllowsSelfSignedTLS(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"green"}`))
	}))
	defer server.Close()

	client := New(logger.Nop())

	cfg := endpointConfig(server.URL)
	if _, err := client.Fetch(context.Background(), cfg, "/"); err == nil {
		t.Fatal("expected certificate verification to fail without insecure mode")
	}

	cfg.Insecure = true
	if _, err := client.Fetch(context.Background(), cfg, "/"); err != nil {
		t.Fatalf("Fetch() with insecure = %v", err)
	}
}
