package util

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.domain.org", true},
		{"", false},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := ValidateEmail(tt.email); got != tt.want {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if ValidatePassword("short") {
		t.Error("ValidatePassword accepted a 5-character password")
	}
	if !ValidatePassword("longenough") {
		t.Error("ValidatePassword rejected an 8+ character password")
	}
}

func TestValidateAmount(t *testing.T) {
	if ValidateAmount(-0.01) {
		t.Error("ValidateAmount accepted a negative amount")
	}
	if !ValidateAmount(0) || !ValidateAmount(12.34) {
		t.Error("ValidateAmount rejected a non-negative amount")
	}
}
