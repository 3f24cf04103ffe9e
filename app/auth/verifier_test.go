package auth

import (
	"errors"
	"testing"
)

type mockStore struct {
	records     map[string]*Record
	findErr     error
	updateErr   error
	updateCalls int
}

func (m *mockStore) FindByLoginKey(key string) (*Record, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.records[key], nil
}

func (m *mockStore) UpdatePasswordHash(id int, hash string) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	for _, r := range m.records {
		if r.ID == id {
			r.PasswordHash = &hash
		}
	}
	return nil
}

func storeWithHash(key, hash string) *mockStore {
	h := hash
	return &mockStore{
		records: map[string]*Record{
			key: {Principal: Principal{ID: 7, LoginKey: key}, PasswordHash: &h},
		},
	}
}

func TestAuthenticateBcrypt(t *testing.T) {
	hash, _ := HashPassword("rahasia123")
	store := storeWithHash("1001", hash)
	v := &Verifier{Store: store, Variant: VariantStudent}

	p, err := v.Authenticate("1001", "rahasia123")
	if err != nil {
		t.Fatalf("authenticate error: %v", err)
	}
	if p.ID != 7 || p.LoginKey != "1001" {
		t.Fatalf("unexpected principal: %+v", p)
	}
	if store.updateCalls != 0 {
		t.Fatal("bcrypt hash must not be rewritten")
	}
}

func TestAuthenticateLegacyUpgradesHash(t *testing.T) {
	store := storeWithHash("1001", legacySecretHash)
	v := &Verifier{Store: store, Variant: VariantStudent}

	if _, err := v.Authenticate("1001", "rahasia123"); err != nil {
		t.Fatalf("authenticate error: %v", err)
	}
	if store.updateCalls != 1 {
		t.Fatalf("expected one hash upgrade write, got %d", store.updateCalls)
	}

	upgraded := *store.records["1001"].PasswordHash
	if IsLegacyHash(upgraded) {
		t.Fatal("stored hash is still legacy after login")
	}
	if !VerifyPassword("rahasia123", upgraded) {
		t.Fatal("upgraded hash does not verify the original password")
	}
}

func TestAuthenticateLegacyUpgradeFailureStillSucceeds(t *testing.T) {
	store := storeWithHash("1001", legacySecretHash)
	store.updateErr = errors.New("connection reset")
	v := &Verifier{Store: store, Variant: VariantStudent}

	if _, err := v.Authenticate("1001", "rahasia123"); err != nil {
		t.Fatalf("migration failure must not fail authentication: %v", err)
	}
}

func TestAuthenticateInvalidCredentials(t *testing.T) {
	hash, _ := HashPassword("rahasia123")
	store := storeWithHash("1001", hash)
	store.records["2002"] = &Record{Principal: Principal{ID: 8, LoginKey: "2002"}}
	v := &Verifier{Store: store, Variant: VariantStudent}

	// Wrong password, unknown login key and missing hash must be
	// indistinguishable.
	for _, c := range []struct{ key, password string }{
		{"1001", "wrong"},
		{"nobody", "rahasia123"},
		{"2002", "rahasia123"},
	} {
		if _, err := v.Authenticate(c.key, c.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("Authenticate(%q, %q) = %v, want ErrInvalidCredentials", c.key, c.password, err)
		}
	}
}

func TestAuthenticateStoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("database is unreachable")
	store := &mockStore{findErr: storeErr}
	v := &Verifier{Store: store, Variant: VariantAdmin}

	_, err := v.Authenticate("admin", "rahasia123")
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("store failure must not collapse into invalid credentials")
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
