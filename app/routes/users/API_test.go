package users

import (
	"strings"
	"testing"
)

func TestValidUsername(t *testing.T) {
	tests := []struct {
		username string
		want     bool
	}{
		{"admin", true},
		{"ops_user-01", true},
		{"ab", false},
		{"Admin", false},
		{"user name", false},
		{"user@школа", false},
		{"", false},
		{strings.Repeat("a", 30), true},
		{strings.Repeat("a", 31), false},
	}

	for _, tt := range tests {
		if got := validUsername(tt.username); got != tt.want {
			t.Errorf("validUsername(%q) = %v, want %v", tt.username, got, tt.want)
		}
	}
}
