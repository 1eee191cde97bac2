package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired peeks (without verifying the signature; the secret lives on
// the backend) at a cached bearer token's exp claim so privileged pages can
// fail closed locally instead of issuing a doomed request. Opaque non-JWT
// tokens carry no expiry and are passed through to the backend to judge.
func TokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
