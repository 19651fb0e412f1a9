package password

import (
	"errors"
	"strings"
	"testing"

	"github.com/vinylshop/record-store/internal/core/domain"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("Abcdef1!")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "Abcdef1!" {
		t.Fatalf("expected hash to differ from plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Fatalf("expected bcrypt cost 10 hash, got %s", hash)
	}
	if !Verify("Abcdef1!", hash) {
		t.Fatalf("expected password to verify")
	}
	if Verify("Abcdef1?", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestHash_Salted(t *testing.T) {
	a, _ := Hash("Abcdef1!")
	b, _ := Hash("Abcdef1!")
	if a == b {
		t.Fatalf("expected distinct salts for identical passwords")
	}
}

func TestSatisfies(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Abcdef1!", true},
		{"Abc def1", true},
		{"P@ssw0rd-long", true},
		{"", false},
		{"Abcde1!", false},   // 7 chars
		{"abcdef1!", false},  // no upper
		{"ABCDEF1!", false},  // no lower
		{"Abcdefg!", false},  // no digit
		{"Abcdefg1", false},  // no symbol
		{"Abcdef1_", false},  // underscore is not an accepted symbol
		{"Abcdef1!\n", false},
		{"Abcdef1!\r", false},
		{"Abcdef1!\u2028", false},
		{"Abcdef1!\u2029", false},
		{"Abcdef1!" + strings.Repeat("a", 64), true},  // 72 bytes
		{"Abcdef1!" + strings.Repeat("a", 65), false}, // 73 bytes
	}
	for _, tc := range cases {
		if got := Satisfies(tc.in); got != tc.want {
			t.Errorf("Satisfies(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCheckPolicy(t *testing.T) {
	if err := CheckPolicy("weak"); !errors.Is(err, domain.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	if err := CheckPolicy(""); !errors.Is(err, domain.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword for empty password, got %v", err)
	}
	if err := CheckPolicy("Abcdef1!"); err != nil {
		t.Fatalf("expected strong password to pass, got %v", err)
	}
}

func TestCheckPolicy_TooLong(t *testing.T) {
	long := "Abcdef1!" + strings.Repeat("a", 70)
	if err := CheckPolicy(long); !errors.Is(err, domain.ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
	if _, err := Hash(long); !errors.Is(err, domain.ErrPasswordTooLong) {
		t.Fatalf("expected Hash to refuse, got %v", err)
	}
}
