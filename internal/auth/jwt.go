package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthenticator validates the HS256 session tokens minted by the
// identity provider integration. Issuing is only used by the sign-in
// callback and by tests.
type JWTAuthenticator struct {
	secret string
	aud    string
	iss    string
	exp    time.Duration
}

func NewJWTAuthenticator(secret, aud, iss string, exp time.Duration) *JWTAuthenticator {
	return &JWTAuthenticator{secret, aud, iss, exp}
}

func (a *JWTAuthenticator) GenerateSessionToken(session Session) (string, error) {
	if session.Email == "" {
		return "", errors.New("session requires an email")
	}

	claims := jwt.MapClaims{
		"sub":   session.Email,
		"email": session.Email,
		"name":  session.Name,
		"exp":   time.Now().Add(a.exp).Unix(),
		"iat":   time.Now().Unix(),
		"nbf":   time.Now().Unix(),
		"iss":   a.iss,
		"aud":   a.aud,
	}
	if session.Image != nil {
		claims["picture"] = *session.Image
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.secret))
}

func (a *JWTAuthenticator) ValidateSessionToken(token string) (*jwt.Token, error) {
	return jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(a.secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithAudience(a.aud),
		jwt.WithIssuer(a.iss),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
}

// SessionFromClaims pulls the caller identity out of validated claims.
func SessionFromClaims(claims jwt.MapClaims) (Session, error) {
	email, _ := claims["email"].(string)
	if email == "" {
		return Session{}, errors.New("token has no email claim")
	}

	session := Session{Email: email}
	if name, ok := claims["name"].(string); ok {
		session.Name = name
	}
	if picture, ok := claims["picture"].(string); ok && picture != "" {
		session.Image = &picture
	}
	return session, nil
}
