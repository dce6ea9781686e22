package render

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/productforge/forge/internal/product"
)

func testConfig(t *testing.T) *product.Config {
	t.Helper()
	return &product.Config{
		Title: "Test Book",
		Pages: []product.PageSpec{{Type: "cover"}},
	}
}

func TestRender(t *testing.T) {
	t.Run("returns PDF bytes on success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/render" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("content type = %q", ct)
			}
			w.Write([]byte("%PDF-1.7 fake"))
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL, Delay: time.Millisecond})
		pdf, err := c.Render(context.Background(), testConfig(t))
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if string(pdf) != "%PDF-1.7 fake" {
			t.Errorf("unexpected body %q", pdf)
		}
	})

	t.Run("retries transient failures", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte("pdf"))
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL, Attempts: 3, Delay: time.Millisecond})
		if _, err := c.Render(context.Background(), testConfig(t)); err != nil {
			t.Fatalf("Render: %v", err)
		}
		if calls.Load() != 3 {
			t.Errorf("expected 3 calls, got %d", calls.Load())
		}
	})

	t.Run("does not retry document rejections", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, `{"error":"unknown page type"}`, http.StatusBadRequest)
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL, Attempts: 5, Delay: time.Millisecond})
		_, err := c.Render(context.Background(), testConfig(t))
		if !errors.Is(err, ErrRejected) {
			t.Fatalf("expected ErrRejected, got %v", err)
		}
		if calls.Load() != 1 {
			t.Errorf("rejection was retried: %d calls", calls.Load())
		}
	})

	t.Run("surfaces service error message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"missing fonts"}`, http.StatusBadRequest)
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL, Delay: time.Millisecond})
		_, err := c.Render(context.Background(), testConfig(t))
		if err == nil || !errors.Is(err, ErrRejected) {
			t.Fatalf("unexpected err %v", err)
		}
		if got := err.Error(); !strings.Contains(got, "missing fonts") {
			t.Errorf("error %q does not carry service message", got)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "busy", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := New(Config{BaseURL: srv.URL, Attempts: 10, Delay: time.Second})
		if _, err := c.Render(ctx, testConfig(t)); err == nil {
			t.Fatal("expected error after cancellation")
		}
	})
}
