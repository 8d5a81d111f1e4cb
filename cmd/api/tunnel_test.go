package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDetectTunnelURL(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "Prefers https",
			body: `{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`,
			want: "https://a.ngrok.io",
		},
		{
			name: "Falls back to first tunnel",
			body: `{"tunnels":[{"public_url":"tcp://0.tcp.ngrok.io:1234","proto":"tcp"}]}`,
			want: "tcp://0.tcp.ngrok.io:1234",
		},
		{name: "No tunnels", body: `{"tunnels":[]}`, wantErr: true},
		{name: "Bad JSON", body: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/tunnels" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			got, err := detectTunnelURL(context.Background(), ts.URL, 2, time.Millisecond)
			if (err != nil) != tt.wantErr {
				t.Fatalf("detectTunnelURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("detectTunnelURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectTunnelURLRetries(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.Write([]byte(`{"tunnels":[]}`))
			return
		}
		w.Write([]byte(`{"tunnels":[{"public_url":"https://late.ngrok.io","proto":"https"}]}`))
	}))
	defer ts.Close()

	got, err := detectTunnelURL(context.Background(), ts.URL, 5, time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://late.ngrok.io" || calls.Load() != 3 {
		t.Errorf("got %q after %d calls", got, calls.Load())
	}
}

func TestDetectTunnelURLCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := detectTunnelURL(ctx, "http://127.0.0.1:0", 3, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
