package transcript

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientFetch(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"engine":   r.URL.Query().Get("engine"),
			"video_id": r.URL.Query().Get("video_id"),
			"api_key":  r.URL.Query().Get("api_key"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"transcripts":[{"text":"Hello","start":0.0,"duration":1.2},{"text":"world","start":1.2,"duration":0.8}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.BaseURL = server.URL

	resp, err := client.Fetch(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if gotQuery["engine"] != "youtube_transcripts" {
		t.Errorf("engine = %q, want %q", gotQuery["engine"], "youtube_transcripts")
	}
	if gotQuery["video_id"] != "abc123" {
		t.Errorf("video_id = %q, want %q", gotQuery["video_id"], "abc123")
	}
	if gotQuery["api_key"] != "test-key" {
		t.Errorf("api_key = %q, want %q", gotQuery["api_key"], "test-key")
	}

	if len(resp.Transcripts) != 2 {
		t.Fatalf("got %d segments, want 2", len(resp.Transcripts))
	}
	if resp.Transcripts[0].Text != "Hello" || resp.Transcripts[1].Text != "world" {
		t.Errorf("unexpected segments: %+v", resp.Transcripts)
	}
}

func TestClientFetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"error":"Video not found"}`,
			wantErr: "unexpected status code: 404",
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"error":"Invalid API key"}`,
			wantErr: "unexpected status code: 401",
		},
		{
			name:    "invalid json",
			status:  http.StatusOK,
			body:    "not json",
			wantErr: "error parsing response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient("test-key")
			client.BaseURL = server.URL

			_, err := client.Fetch(context.Background(), "abc123")
			if err == nil {
				t.Fatal("Fetch() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Fetch() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestClientFetchConnectionRefused(t *testing.T) {
	client := NewClient("test-key")
	client.BaseURL = "http://127.0.0.1:1"

	_, err := client.Fetch(context.Background(), "abc123")
	if err == nil {
		t.Fatal("Fetch() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "error sending request") {
		t.Errorf("Fetch() error = %q, want it to contain %q", err, "error sending request")
	}
}
