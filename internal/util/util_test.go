package util

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReadAllLimit(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		limit   int64
		wantErr bool
	}{
		{"under", "abc", 4, false},
		{"exact", "abcd", 4, false},
		{"over", "abcde", 4, true},
		{"no limit", strings.Repeat("x", 1<<16), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadAllLimit(strings.NewReader(tt.body), tt.limit)
			if tt.wantErr {
				if !errors.Is(err, ErrTooLarge) {
					t.Errorf("err = %v, want ErrTooLarge", err)
				}
				return
			}
			if err != nil || string(got) != tt.body {
				t.Errorf("ReadAllLimit = %d bytes, %v", len(got), err)
			}
		})
	}
}

func TestReadFileLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.bin")
	if err := os.WriteFile(path, make([]byte, 100), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFileLimit(path, 100); err != nil {
		t.Errorf("at limit: %v", err)
	}
	if _, err := ReadFileLimit(path, 99); !errors.Is(err, ErrTooLarge) {
		t.Errorf("over limit: err = %v, want ErrTooLarge", err)
	}
}

func TestGetBytes(t *testing.T) {
	body := strings.Repeat("x", 1000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		case "/chunked":
			// flushing before the body is written drops Content-Length
			w.(http.Flusher).Flush()
			w.Write([]byte(body))
		default:
			w.Write([]byte(body))
		}
	}))
	defer srv.Close()
	ctx := context.Background()

	got, err := GetBytes(ctx, srv.URL+"/ok", time.Second, 1000)
	if err != nil || string(got) != body {
		t.Fatalf("GetBytes = %d bytes, %v", len(got), err)
	}
	for _, path := range []string{"/ok", "/chunked"} {
		if _, err := GetBytes(ctx, srv.URL+path, time.Second, 999); !errors.Is(err, ErrTooLarge) {
			t.Errorf("%s over limit: err = %v, want ErrTooLarge", path, err)
		}
	}
	if _, err := GetBytes(ctx, srv.URL+"/missing", time.Second, 0); err == nil {
		t.Error("expected an error for a 404")
	}
}
