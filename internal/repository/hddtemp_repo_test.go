package repository

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"
)

// serveOnce accepts a single connection, writes payload and closes it.
func serveOnce(t *testing.T, payload string, hold time.Duration) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		if hold > 0 {
			time.Sleep(hold)
		}
		_, _ = conn.Write([]byte(payload))
	}()
	return ln.Addr().String()
}

func TestHDDTempTCP_Fetch(t *testing.T) {
	t.Parallel()

	want := "|/dev/sda|HARD DRIVE|27|C||/dev/sdb|HARD DRIVE|SLP|*|"
	addr := serveOnce(t, want, 0)

	repo := NewRepository(addr, 2*time.Second)
	got, err := repo.Response.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("response: want %q, got %q", want, got)
	}
}

func TestHDDTempTCP_FetchEmptyResponse(t *testing.T) {
	t.Parallel()

	addr := serveOnce(t, "", 0)
	got, err := NewHDDTempTCP(addr, 2*time.Second).Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("want empty response, got %q", got)
	}
}

func TestHDDTempTCP_ConnectionRefused(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	_, err = NewHDDTempTCP(addr, time.Second).Fetch(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestHDDTempTCP_Timeout(t *testing.T) {
	t.Parallel()

	addr := serveOnce(t, "|/dev/sda|HARD DRIVE|27|C|", 2*time.Second)

	start := time.Now()
	_, err := NewHDDTempTCP(addr, 200*time.Millisecond).Fetch(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("timeout not enforced, took %v", elapsed)
	}
}

func TestHDDTempTCP_ResponseTooLarge(t *testing.T) {
	t.Parallel()

	addr := serveOnce(t, strings.Repeat("x", maxResponseBytes+10), 0)
	_, err := NewHDDTempTCP(addr, 2*time.Second).Fetch(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}
