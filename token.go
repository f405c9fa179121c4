package documind

import "time"

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 28 * 24 * time.Hour

// Claims is the verified content of a session token.
type Claims struct {
	UserID    int64
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	// IssueToken signs claims {sub: user ID, email, exp: now + SessionTTL}.
	IssueToken(u *User) (string, error)

	// VerifyToken checks the signature and expiry and decodes the claims.
	// Returns EUNAUTHORIZED for invalid tokens or a missing subject.
	VerifyToken(token string) (*Claims, error)
}
