package database

import "testing"

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Admin", "admin"},
		{"  ADMIN  ", "admin"},
		{"ops_user-01", "ops_user-01"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeUsername(tt.input); got != tt.want {
			t.Errorf("NormalizeUsername(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPlaceholder(t *testing.T) {
	if got := placeholder(1); got != "$1" {
		t.Errorf("placeholder(1) = %q, want $1", got)
	}
	if got := placeholder(12); got != "$12" {
		t.Errorf("placeholder(12) = %q, want $12", got)
	}
}
