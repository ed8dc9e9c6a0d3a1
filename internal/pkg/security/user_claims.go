package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "photoshare"
	JWTExpirationTime        = time.Hour * 24
)

// UserClaims carries the identity attributes embedded in a token.
type UserClaims struct {
	UserID  uint64 `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
