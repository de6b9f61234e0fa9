package auth

import (
	"errors"
	"time"

	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/utils/auth/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionUserKey is the gin context key the session user is stored under
const SessionUserKey = "sessionUser"

// NewSessionJWT creates a new session token for the specified user with the specified secret
func NewSessionJWT(user entities.SessionUser, issuedAt, expiresAt time.Time, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("JWT token secret undefined")
	}

	claims := common.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID,
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
	if !expiresAt.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// GetSessionClaims returns the claims of the token, or nil when the token is
// malformed, expired or not signed with secret
func GetSessionClaims(token string, secret []byte) *common.SessionClaims {
	if len(secret) == 0 {
		return nil
	}

	claims := &common.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil
	}

	return claims
}

// SessionVerifierFactory creates a middleware that only lets requests with a valid session through.
// The session user is stored in the context under SessionUserKey
func SessionVerifierFactory(tokenProvider func(*gin.Context) string, secret []byte, invalidSessionHandler gin.HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := GetSessionClaims(tokenProvider(ctx), secret)
		if claims == nil {
			invalidSessionHandler(ctx)
			ctx.Abort()
			return
		}

		ctx.Set(SessionUserKey, claims.User())
		ctx.Next()
	}
}

// GetSessionUser returns the user stored in the context by the session verifier
func GetSessionUser(ctx *gin.Context) (entities.SessionUser, bool) {
	value, exists := ctx.Get(SessionUserKey)
	if !exists {
		return entities.SessionUser{}, false
	}
	user, ok := value.(entities.SessionUser)
	return user, ok
}
