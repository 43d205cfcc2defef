package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sourcesPayload = `{"status":"ok","sources":[
	{"id":"bbc-news","name":"BBC News","url":"https://www.bbc.co.uk/news","category":"general","language":"en","country":"gb"},
	{"id":"reuters","name":"Reuters","url":"https://www.reuters.com","category":"general","language":"en","country":"us"}
]}`

func newTestChecker(t *testing.T, handler http.HandlerFunc) *NewsAPIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &NewsAPIClient{
		apiKey:  "test-key",
		baseURL: server.URL,
		client:  &http.Client{Timeout: 2 * time.Second},
	}
}

func TestNewsAPIClient_LookupHit(t *testing.T) {
	checker := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/top-headlines/sources" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("apiKey") != "test-key" {
			t.Errorf("missing apiKey query param")
		}
		w.Write([]byte(sourcesPayload))
	})

	info, err := checker.Lookup(context.Background(), "reuters.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Name != "Reuters" {
		t.Errorf("expected Reuters, got %q", info.Name)
	}
	if info.Category != "general" {
		t.Errorf("expected category general, got %q", info.Category)
	}
}

func TestNewsAPIClient_LookupMiss(t *testing.T) {
	checker := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sourcesPayload))
	})

	_, err := checker.Lookup(context.Background(), "sketchy-news.info")
	if !errors.Is(err, ErrSourceUnknown) {
		t.Fatalf("expected ErrSourceUnknown, got %v", err)
	}
}

func TestNewsAPIClient_UpstreamError(t *testing.T) {
	checker := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	if _, err := checker.Lookup(context.Background(), "reuters.com"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestNoSourceChecker(t *testing.T) {
	checker := noSourceChecker{}
	if checker.Configured() {
		t.Error("unconfigured checker must report Configured() == false")
	}
	if _, err := checker.Lookup(context.Background(), "bbc.co.uk"); !errors.Is(err, ErrUnconfigured) {
		t.Fatalf("expected ErrUnconfigured, got %v", err)
	}
}

func TestDomainOf(t *testing.T) {
	cases := []struct {
		url, want string
		wantErr   bool
	}{
		{url: "https://www.bbc.co.uk/news/article", want: "bbc.co.uk"},
		{url: "http://reuters.com/tech", want: "reuters.com"},
		{url: "not a url", wantErr: true},
		{url: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := DomainOf(tc.url)
		if tc.wantErr {
			if err == nil {
				t.Errorf("DomainOf(%q): expected error", tc.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("DomainOf(%q): %v", tc.url, err)
			continue
		}
		if got != tc.want {
			t.Errorf("DomainOf(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
