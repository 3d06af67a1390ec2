package secretx

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
)

func testKey(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("rand: %v", err)
	}
	return base64.StdEncoding.EncodeToString(key)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	s, err := NewSealer(testKey(t))
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}
	sealed, err := s.Seal("AAAA-bearer-token")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if sealed == "AAAA-bearer-token" {
		t.Fatalf("sealed value equals plaintext")
	}
	got, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got != "AAAA-bearer-token" {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestNewSealer_RejectsBadKey(t *testing.T) {
	if _, err := NewSealer("not-base64!!"); err == nil {
		t.Fatalf("want error for invalid base64")
	}
	short := base64.StdEncoding.EncodeToString([]byte("short"))
	if _, err := NewSealer(short); err == nil {
		t.Fatalf("want error for short key")
	}
}

func TestOpen_RejectsTampered(t *testing.T) {
	s, err := NewSealer(testKey(t))
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}
	sealed, err := s.Seal("tok")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	raw, _ := base64.StdEncoding.DecodeString(sealed)
	raw[len(raw)-1] ^= 0xff
	if _, err := s.Open(base64.StdEncoding.EncodeToString(raw)); err == nil {
		t.Fatalf("want error for tampered ciphertext")
	}
	if _, err := s.Open("AA"); err == nil {
		t.Fatalf("want error for truncated ciphertext")
	}
}
