package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/iho/loanledger/internal/infrastructure/config"
)

func TestNewServer(t *testing.T) {
	cfg := &config.Config{
		HTTPPort:         "9090",
		HTTPReadTimeout:  5 * time.Second,
		HTTPWriteTimeout: 10 * time.Second,
		HTTPIdleTimeout:  60 * time.Second,
	}

	srv := newServer(cfg, http.NotFoundHandler())

	if srv.Addr != ":9090" {
		t.Fatalf("expected addr :9090, got %s", srv.Addr)
	}
	if srv.ReadTimeout != 5*time.Second {
		t.Fatalf("expected read timeout 5s, got %s", srv.ReadTimeout)
	}
	if srv.WriteTimeout != 10*time.Second {
		t.Fatalf("expected write timeout 10s, got %s", srv.WriteTimeout)
	}
	if srv.IdleTimeout != 60*time.Second {
		t.Fatalf("expected idle timeout 60s, got %s", srv.IdleTimeout)
	}
	if srv.Handler == nil {
		t.Fatal("expected handler to be set")
	}
}
