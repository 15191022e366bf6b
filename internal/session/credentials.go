package session

import (
	"github.com/golang-jwt/jwt/v4"

	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// Credentials is what the sign-in collaborator left in the store.
type Credentials struct {
	AccessToken string
	UserID      string
	Email       string
}

// Credentials reads the auth keys. Reports false when no access token is
// present. When the user_id key is absent, the account ID falls back to the
// token's sub claim.
func (m *Manager) Credentials() (Credentials, bool) {
	token, ok, err := m.kv.Get(types.KeyAccessToken)
	if err != nil {
		m.log.Debug("reading access token", "error", err)
		return Credentials{}, false
	}
	if !ok || token == "" {
		return Credentials{}, false
	}

	creds := Credentials{AccessToken: token}
	if email, ok, _ := m.kv.Get(types.KeyUserEmail); ok {
		creds.Email = email
	}
	if id, ok, _ := m.kv.Get(types.KeyUserID); ok && id != "" {
		creds.UserID = id
	} else {
		creds.UserID = m.subjectClaim(token)
	}
	return creds, true
}

// subjectClaim extracts the sub claim from a JWT without verifying the
// signature. Verification is the backend's job; the client only needs the
// account identity the token was issued for.
func (m *Manager) subjectClaim(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		m.log.Debug("access token is not a parsable JWT", "error", err)
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}
