package auth

import (
	"errors"
	"fmt"
	"log"
)

// ErrInvalidCredentials covers unknown login key, missing password hash and
// password mismatch alike, so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Principal is the public-safe view of an authenticated account. It never
// carries the password hash.
type Principal struct {
	ID          int
	LoginKey    string
	DisplayName string
	RoleID      *int
	RoleType    *string
}

// Record is a principal as read from the store, including the stored hash.
type Record struct {
	Principal
	PasswordHash *string
}

// Store resolves one principal variant. FindByLoginKey returns (nil, nil)
// when no active record matches; a non-nil error means the store itself
// failed and is propagated distinctly from invalid credentials.
type Store interface {
	FindByLoginKey(key string) (*Record, error)
	UpdatePasswordHash(id int, hash string) error
}

// Verifier authenticates one principal variant against its store.
type Verifier struct {
	Store   Store
	Variant string
}

// Authenticate looks the login key up, verifies the password against the
// stored hash and, when the hash is still legacy SHA1, rewrites it as
// bcrypt. The rewrite is best effort: its failure is logged and never turns
// a successful login into a failure.
func (v *Verifier) Authenticate(loginKey, password string) (*Principal, error) {
	record, err := v.Store.FindByLoginKey(loginKey)
	if err != nil {
		return nil, fmt.Errorf("%s lookup failed: %w", v.Variant, err)
	}
	if record == nil || record.PasswordHash == nil || *record.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	stored := *record.PasswordHash
	if !VerifyPassword(password, stored) {
		return nil, ErrInvalidCredentials
	}

	if IsLegacyHash(stored) {
		v.upgradePassword(record.ID, password)
	}

	principal := record.Principal
	return &principal, nil
}

func (v *Verifier) upgradePassword(id int, password string) {
	newHash, err := HashPassword(password)
	if err != nil {
		log.Printf("Failed to rehash %s password for id %d: %v", v.Variant, id, err)
		return
	}
	if err := v.Store.UpdatePasswordHash(id, newHash); err != nil {
		log.Printf("Failed to upgrade %s password for id %d: %v", v.Variant, id, err)
	}
}
