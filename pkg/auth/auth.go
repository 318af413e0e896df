package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const AuthorizationHeader = "Authorization"

// Claims carried by a librarian access token.
type Claims struct {
	LibrarianID int64  `json:"librarianId"`
	Name        string `json:"name"`
	jwt.RegisteredClaims
}

type Config struct {
	SigningKey string        `yaml:"signingKey" envconfig:"JWT_SIGNING_KEY" default:"secret"`
	TokenTTL   time.Duration `yaml:"tokenTTL" envconfig:"JWT_TOKEN_TTL" default:"6h"`
}

// NewToken signs an HS256 access token for the librarian.
func NewToken(key []byte, librarianID int64, name string, ttl time.Duration) (string, error) {
	claims := &Claims{
		LibrarianID: librarianID,
		Name:        name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ParseToken validates the token signature and expiry.
func ParseToken(key []byte, tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

type ctxKey struct{}

// SetLibrarianContext injects the acting librarian into the request context.
func SetLibrarianContext(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

// LibrarianFromContext returns the acting librarian, if any.
func LibrarianFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*Claims)
	return claims, ok
}
