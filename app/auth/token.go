package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Variant tags carried in the token "type" claim. A token is only accepted
// by the verifier that expects its tag.
const (
	VariantAdmin   = "admin"
	VariantStudent = "student"
	VariantTeacher = "teacher"
	VariantPPDB    = "ppdb"
)

// TokenTTL is the session lifetime for every principal variant.
const TokenTTL = 7 * 24 * time.Hour

var (
	ErrTokenInvalid  = errors.New("invalid token")
	ErrMissingSecret = errors.New("signing secret is not configured")
)

type Claims struct {
	UserID   int    `json:"user_id"`
	LoginKey string `json:"login_key"`
	RoleID   *int   `json:"role_id,omitempty"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

type TokenCodec struct {
	secret []byte
}

// NewTokenCodec fails when the secret is empty: tokens are never signed or
// verified with a default secret.
func NewTokenCodec(secret string) (*TokenCodec, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &TokenCodec{secret: []byte(secret)}, nil
}

func (c *TokenCodec) Issue(p *Principal, variant string) (string, error) {
	return c.IssueWithTTL(p, variant, TokenTTL)
}

func (c *TokenCodec) IssueWithTTL(p *Principal, variant string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   p.ID,
		LoginKey: p.LoginKey,
		RoleID:   p.RoleID,
		Type:     variant,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "epesantren",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify parses and validates a token and checks its variant tag. Every
// failure mode (malformed, tampered, expired, wrong variant) collapses to
// ErrTokenInvalid; a token is invalid from its exp instant onward.
func (c *TokenCodec) Verify(tokenString, expectedVariant string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Type != expectedVariant {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
