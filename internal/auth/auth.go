package auth

import "github.com/golang-jwt/jwt/v5"

// Session is the identity the external provider asserts for a caller.
type Session struct {
	Email string
	Name  string
	Image *string
}

type Authenticator interface {
	GenerateSessionToken(session Session) (string, error)
	ValidateSessionToken(token string) (*jwt.Token, error)
}
