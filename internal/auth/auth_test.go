package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teamup-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(role models.UserRole) *models.User {
	user := &models.User{Username: "alice", Account: "alice", Role: role}
	user.ID = uuid.New()
	return user
}

func TestNewTokenService(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		_, err := NewTokenService("", time.Hour)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("default ttl", func(t *testing.T) {
		svc, err := NewTokenService("secret", 0)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, svc.ttl)
	})
}

func TestJWTOperations(t *testing.T) {
	svc, err := NewTokenService("test-signing-key", time.Hour)
	require.NoError(t, err)

	t.Run("generate and validate", func(t *testing.T) {
		user := newTestUser(models.UserRoleAdmin)

		token, err := svc.GenerateJWT(user)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := svc.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.True(t, claims.IsAdmin())
		assert.Equal(t, issuer, claims.Issuer)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenService("another-key", time.Hour)
		require.NoError(t, err)
		token, err := other.GenerateJWT(newTestUser(models.UserRoleUser))
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateJWT("not.a.token")
		assert.Error(t, err)
	})

	t.Run("non-uuid subject", func(t *testing.T) {
		claims := &AuthClaims{
			UserID: "12345",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestJWTExpiration(t *testing.T) {
	svc, err := NewTokenService("test-signing-key", time.Minute)
	require.NoError(t, err)

	issued := time.Now().Add(-2 * time.Minute)
	svc.now = func() time.Time { return issued }
	token, err := svc.GenerateJWT(newTestUser(models.UserRoleUser))
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateJWT(token)
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, err := NewTokenService("test-signing-key", time.Hour)
	require.NoError(t, err)
	mw := NewAuthMiddleware(svc)

	user := newTestUser(models.UserRoleUser)
	token, err := svc.GenerateJWT(user)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		require.True(t, ok)
		claims, ok := GetAuthClaims(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "admin": IsAdmin(c), "username": claims.Username})
	})

	testCases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid bearer token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"missing bearer prefix", token, http.StatusUnauthorized},
		{"invalid token", "Bearer invalid", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, user.ID.String(), body["id"])
				assert.Equal(t, false, body["admin"])
				assert.Equal(t, "alice", body["username"])
			} else {
				assert.Equal(t, "unauthenticated", body["kind"])
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}
