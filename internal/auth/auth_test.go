package auth

import (
	"strings"
	"testing"
)

func TestHMACVerifier(t *testing.T) {
	v := NewHMACVerifier("test-secret")

	t.Run("round trips an issued token", func(t *testing.T) {
		tok := v.Issue("user-42")
		got, err := v.Verify(tok)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "user-42" {
			t.Fatalf("expected user-42, got %q", got)
		}
	})

	t.Run("rejects a tampered signature", func(t *testing.T) {
		tok := v.Issue("user-42")
		id, _, _ := strings.Cut(tok, ".")
		if _, err := v.Verify(id + ".forged"); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		other := NewHMACVerifier("other-secret")
		if _, err := v.Verify(other.Issue("user-42")); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		for _, tok := range []string{"", "justonepart", ".", "a.", ".b", "!!.sig"} {
			if _, err := v.Verify(tok); err == nil {
				t.Errorf("token %q should not verify", tok)
			}
		}
	})
}
