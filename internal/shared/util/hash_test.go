package util

import "testing"

func TestHashUserKey(t *testing.T) {
	id := "google:12345"
	got := HashUserKey(id)
	if got != HashUserKey(id) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}

func TestHashContent(t *testing.T) {
	a := HashContent([]byte(`{"values":{"ranked":["security"]}}`))
	b := HashContent([]byte(`{"values":{"ranked":["security"]}}`))
	if a != b {
		t.Fatalf("expected identical content to hash identically")
	}
	if a == HashContent([]byte(`{"values":{"ranked":["growth"]}}`)) {
		t.Fatalf("expected different content to hash differently")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(a))
	}
}
