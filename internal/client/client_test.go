package client

import (
	"crypto/tls"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBuildTLSConfig(t *testing.T) {
	cfg := buildTLSConfig(false)
	if cfg.InsecureSkipVerify {
		t.Fatal("InsecureSkipVerify should be false by default")
	}
	if cfg.MinVersion != tls.VersionTLS12 {
		t.Fatalf("MinVersion = %d, want %d", cfg.MinVersion, tls.VersionTLS12)
	}

	cfg = buildTLSConfig(true)
	if !cfg.InsecureSkipVerify {
		t.Fatal("InsecureSkipVerify should be set")
	}
}

func TestNewClientInsecure(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	}))
	defer server.Close()

	// Default posture refuses the self-signed certificate.
	c := NewClient(ClientConfig{})
	resp, err := c.HTTPClient().Get(server.URL)
	if err == nil {
		resp.Body.Close()
		t.Fatal("expected a certificate verification error")
	}

	// The insecure opt-in accepts it.
	c = NewClient(ClientConfig{Insecure: true})
	resp, err = c.HTTPClient().Get(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "ok" {
		t.Fatalf("body = %q, want %q", body, "ok")
	}
}
