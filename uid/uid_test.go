package uid_test

import (
	"strings"
	"testing"

	"github.com/objema/objema/uid"
)

func TestNew_ShapeAndUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		s := uid.New().String()
		if len(s) != 36 {
			t.Fatalf("expected 36 chars, got %d: %q", len(s), s)
		}
		for _, pos := range []int{8, 13, 18, 23} {
			if s[pos] != '-' {
				t.Fatalf("expected hyphen at %d: %q", pos, s)
			}
		}
		if s[14] != '4' {
			t.Fatalf("expected version 4 marker: %q", s)
		}
		if !strings.ContainsRune("89ab", rune(s[19])) {
			t.Fatalf("expected variant marker in [89ab]: %q", s)
		}
		if s != strings.ToLower(s) {
			t.Fatalf("canonical form must be lowercase: %q", s)
		}
		if _, dup := seen[s]; dup {
			t.Fatalf("duplicate identity after %d draws: %q", i, s)
		}
		seen[s] = struct{}{}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	id := uid.New()
	back, err := uid.Parse(id.String())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if back.Bytes() != id.Bytes() {
		t.Fatalf("round trip changed bytes: %v vs %v", back.Bytes(), id.Bytes())
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := uid.Parse("not-an-identity"); err == nil {
		t.Fatalf("expected parse error")
	}
}
