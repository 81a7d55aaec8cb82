package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestGet(t *testing.T) {
	t.Run("returns body and status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		client := NewClient(ClientConfig{Timeout: time.Second})

		body, status, err := client.Get(context.Background(), srv.URL, nil)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("status mismatch: got %d, want 200", status)
		}
		if string(body) != `{"ok":true}` {
			t.Errorf("body mismatch: got %s", body)
		}
	})

	t.Run("sets request headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Internal-Key") != "secret" {
				t.Errorf("header mismatch: got %q", r.Header.Get("X-Internal-Key"))
			}
		}))
		defer srv.Close()

		client := NewClient(ClientConfig{Timeout: time.Second})

		if _, _, err := client.Get(context.Background(), srv.URL, map[string]string{"X-Internal-Key": "secret"}); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
	})

	t.Run("retries on 5xx", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`recovered`))
		}))
		defer srv.Close()

		client := NewClient(ClientConfig{Timeout: time.Second, Retries: 3})

		body, status, err := client.Get(context.Background(), srv.URL, nil)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("status mismatch: got %d, want 200", status)
		}
		if string(body) != "recovered" {
			t.Errorf("body mismatch: got %s", body)
		}
		if got := atomic.LoadInt32(&calls); got != 3 {
			t.Errorf("call count mismatch: got %d, want 3", got)
		}
	})

	t.Run("bounds redirects", func(t *testing.T) {
		var srv *httptest.Server
		hop := 0
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hop++
			http.Redirect(w, r, fmt.Sprintf("%s/hop/%d", srv.URL, hop), http.StatusFound)
		}))
		defer srv.Close()

		client := NewClient(ClientConfig{Timeout: 2 * time.Second, MaxRedirects: 3})

		if _, _, err := client.Get(context.Background(), srv.URL, nil); err == nil {
			t.Fatal("expected error when redirect limit is exceeded")
		}
	})
}
