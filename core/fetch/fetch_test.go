package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).writeLoop"),
	)
}

func serve(t *testing.T, status int, contentType, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetJSON(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantKind    error
	}{
		{name: "ok", status: 200, contentType: "application/json; charset=utf-8", body: `[{"id":1}]`},
		{name: "server error", status: 500, contentType: "application/json", body: `{}`, wantKind: ErrNetwork},
		{name: "not found", status: 404, contentType: "text/plain", body: "nope", wantKind: ErrNetwork},
		{name: "html body", status: 200, contentType: "text/html", body: "<html></html>", wantKind: ErrFormat},
		{name: "missing content type", status: 200, contentType: "", body: `[]`, wantKind: ErrFormat},
		{name: "malformed json", status: 200, contentType: "application/json", body: `[{"id":`, wantKind: ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, tt.status, tt.contentType, tt.body)
			c := NewClient(Options{})
			defer c.http.CloseIdleConnections()

			var out interface{}
			err := c.GetJSON(context.Background(), srv.URL, &out)
			if tt.wantKind == nil {
				if err != nil {
					t.Fatalf("GetJSON: %v", err)
				}
				if list, ok := out.([]interface{}); !ok || len(list) != 1 {
					t.Errorf("decoded = %v, want one element", out)
				}
				return
			}
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("GetJSON error = %v, want kind %v", err, tt.wantKind)
			}
			var fe *Error
			if !errors.As(err, &fe) {
				t.Fatalf("error %T is not *fetch.Error", err)
			}
			if fe.URL != srv.URL {
				t.Errorf("Error.URL = %q, want %q", fe.URL, srv.URL)
			}
		})
	}
}

func TestGetJSON_TransportError(t *testing.T) {
	srv := serve(t, 200, "application/json", "[]")
	url := srv.URL
	srv.Close()

	c := NewClient(Options{})
	var out interface{}
	err := c.GetJSON(context.Background(), url, &out)
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("GetJSON on closed server = %v, want ErrNetwork", err)
	}
}

func TestGetJSON_CancelledContext(t *testing.T) {
	srv := serve(t, 200, "application/json", "[]")
	c := NewClient(Options{RPS: 1, Burst: 1})
	defer c.http.CloseIdleConnections()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out interface{}
	if err := c.GetJSON(ctx, srv.URL, &out); !errors.Is(err, ErrNetwork) {
		t.Fatalf("GetJSON cancelled = %v, want ErrNetwork", err)
	}
}

func TestIsJSONContentType(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"application/problem+json", true},
		{"text/html", false},
		{"", false},
		{"application/javascript", false},
	}
	for _, tt := range tests {
		if got := IsJSONContentType(tt.header); got != tt.want {
			t.Errorf("IsJSONContentType(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}
