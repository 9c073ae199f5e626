package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/private", RequireAuth(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/public", OptionalAuth(), func(ctx *gin.Context) {
		_, authed := ctx.Get("user")
		ctx.JSON(http.StatusOK, gin.H{"authed": authed})
	})
	return router
}

func get(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequireAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := authRouter()

	assert.Equal(t, http.StatusUnauthorized, get(router, "/private", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, "/private", "Bearer ").Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, "/private", "not-a-bearer-token").Code)
}

func TestRequireAuthRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := authRouter()
	token := signToken(t, "another-secret", jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	assert.Equal(t, http.StatusUnauthorized, get(router, "/private", "Bearer "+token).Code)
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := authRouter()
	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	assert.Equal(t, http.StatusUnauthorized, get(router, "/private", "Bearer "+token).Code)
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := authRouter()
	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	assert.Equal(t, http.StatusOK, get(router, "/private", "Bearer "+token).Code)
}

func TestOptionalAuthLetsGuestsThrough(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := authRouter()

	recorder := get(router, "/public", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"authed":false`)

	recorder = get(router, "/public", "Bearer invalid")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"authed":false`)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	recorder = get(router, "/public", "Bearer "+token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"authed":true`)
}
