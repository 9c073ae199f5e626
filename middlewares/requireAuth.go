package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// parseToken validates a bearer token and returns its claims.
func parseToken(authHeader string) (jwt.MapClaims, bool) {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		return nil, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := parseToken(ctx.GetHeader("Authorization"))
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		ctx.Set("user", claims)
		ctx.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present but lets
// guests through. Storefront cart routes use this: guest checkout is allowed.
func OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if claims, ok := parseToken(ctx.GetHeader("Authorization")); ok {
			ctx.Set("user", claims)
		}
		ctx.Next()
	}
}
