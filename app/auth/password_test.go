package auth

import "testing"

// SHA1("rahasia123")
const legacySecretHash = "68bd72cfcd18bd2c3c781bbced1c59fb4dd67c03"

func TestIsLegacyHash(t *testing.T) {
	cases := []struct {
		hash string
		want bool
	}{
		{legacySecretHash, true},
		{"68BD72CFCD18BD2C3C781BBCED1C59FB4DD67C03", false},
		{"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", false},
		{"", false},
		{"68bd72cf", false},
	}
	for _, c := range cases {
		if got := IsLegacyHash(c.hash); got != c.want {
			t.Errorf("IsLegacyHash(%q) = %v, want %v", c.hash, got, c.want)
		}
	}
}

func TestVerifyLegacyPassword(t *testing.T) {
	if !VerifyPassword("rahasia123", legacySecretHash) {
		t.Fatal("expected legacy SHA1 password to verify")
	}
	if VerifyPassword("wrong", legacySecretHash) {
		t.Fatal("expected wrong legacy password to fail")
	}
}

func TestVerifyBcryptPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if IsLegacyHash(hash) {
		t.Fatal("bcrypt hash classified as legacy")
	}
	if !VerifyPassword("rahasia123", hash) {
		t.Fatal("expected bcrypt password to verify")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatal("expected wrong bcrypt password to fail")
	}
}
