// Package jwt implements documind.TokenService with HS256-signed JSON Web
// Tokens.
package jwt

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/fwojciec/documind"
	"github.com/golang-jwt/jwt/v5"
)

// Ensure TokenService implements documind.TokenService at compile time.
var _ documind.TokenService = (*TokenService)(nil)

// TokenService signs and verifies session tokens with a shared secret.
type TokenService struct {
	secret []byte

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewTokenService creates a new TokenService signing with secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), Now: time.Now}
}

// IssueToken signs claims {sub, email, exp} for u. The subject is the
// numeric user ID.
func (s *TokenService) IssueToken(u *documind.User) (string, error) {
	if u == nil || u.ID <= 0 {
		return "", documind.Errorf(documind.EINVALID, "user ID required")
	}

	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"exp":   s.Now().Add(documind.SessionTTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken checks the signature and expiry of token and decodes its
// claims.
func (s *TokenService) VerifyToken(token string) (*documind.Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.Now),
		jwt.WithJSONNumber(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, documind.Errorf(documind.EUNAUTHORIZED, "Token expired")
		}
		return nil, documind.Errorf(documind.EUNAUTHORIZED, "Invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, documind.Errorf(documind.EUNAUTHORIZED, "Invalid token")
	}

	userID, err := subject(claims["sub"])
	if err != nil {
		return nil, err
	}

	out := &documind.Claims{UserID: userID}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// subject decodes the "sub" claim into a positive user ID. Numeric and
// string forms are both accepted.
func subject(v any) (int64, error) {
	var id int64
	var err error

	switch sub := v.(type) {
	case json.Number:
		id, err = sub.Int64()
	case float64:
		id = int64(sub)
	case string:
		id, err = strconv.ParseInt(sub, 10, 64)
	default:
		return 0, documind.Errorf(documind.EUNAUTHORIZED, "Invalid token subject")
	}
	if err != nil || id <= 0 {
		return 0, documind.Errorf(documind.EUNAUTHORIZED, "Invalid token subject")
	}
	return id, nil
}
