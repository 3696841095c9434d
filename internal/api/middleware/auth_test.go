package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, method jwt.SigningMethod, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   "ops@fairmint",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	var signingKey interface{} = key
	if method == jwt.SigningMethodHS256 {
		signingKey = []byte("shared-secret")
	}
	signed, err := token.SignedString(signingKey)
	require.NoError(t, err)
	return signed
}

func TestAuthenticator_Authenticate(t *testing.T) {
	key, publicPEM := generateKey(t)
	a, err := NewAuthenticator(AuthConfig{JWTPublicKey: publicPEM, APIKeys: []string{"key-1", ""}})
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		authType string
		subject  string
		wantErr  bool
	}{
		{name: "missing header", header: "", wantErr: true},
		{name: "malformed header", header: "Bearer", wantErr: true},
		{name: "unsupported scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "valid api key", header: "ApiKey key-1", authType: AUTH_TYPE_APIKEY},
		{name: "invalid api key", header: "ApiKey key-2", wantErr: true},
		{name: "empty configured key is ignored", header: "ApiKey ", wantErr: true},
		{name: "valid jwt", header: "Bearer " + signToken(t, key, jwt.SigningMethodRS256, time.Now().Add(time.Hour)), authType: AUTH_TYPE_JWT, subject: "ops@fairmint"},
		{name: "expired jwt", header: "Bearer " + signToken(t, key, jwt.SigningMethodRS256, time.Now().Add(-time.Hour)), wantErr: true},
		{name: "hmac jwt rejected", header: "Bearer " + signToken(t, key, jwt.SigningMethodHS256, time.Now().Add(time.Hour)), wantErr: true},
		{name: "garbage jwt", header: "Bearer not.a.jwt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := a.Authenticate(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.authType, result.AuthType)
			assert.Equal(t, tt.subject, result.AuthSubject)
		})
	}
}

func TestNewAuthenticator_InvalidKey(t *testing.T) {
	_, err := NewAuthenticator(AuthConfig{JWTPublicKey: "not a pem"})
	assert.Error(t, err)
}

func TestAuthenticator_NothingConfigured(t *testing.T) {
	a, err := NewAuthenticator(AuthConfig{})
	require.NoError(t, err)

	_, err = a.Authenticate("ApiKey anything")
	assert.ErrorContains(t, err, "no API keys configured")
	_, err = a.Authenticate("Bearer token")
	assert.ErrorContains(t, err, "JWT public key not configured")
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a, err := NewAuthenticator(AuthConfig{APIKeys: []string{"key-1"}})
	require.NoError(t, err)

	router := gin.New()
	router.Use(RequestID())
	router.POST("/admin", Auth(a), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(AUTH_TYPE_KEY))
	})

	t.Run("authorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set("Authorization", "ApiKey key-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, AUTH_TYPE_APIKEY, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set("X-Request-ID", "req-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"unauthorized"`)
		assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
	})
}
