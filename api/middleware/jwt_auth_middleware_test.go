package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BrindaS42/CEMS-SE-GRP-18/api/middleware"
)

const testSecret = "test-secret"

func signToken(t *testing.T, id, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   id,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func setupAuthRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	group := r.Group("/api")
	group.Use(middleware.JwtAuthMiddleware(testSecret))
	if len(roles) > 0 {
		group.Use(middleware.RequireRoles(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   c.GetString("x-user-id"),
			"role": c.GetString("x-user-role"),
		})
	})
	return r
}

func TestJwtAuthMiddleware(t *testing.T) {
	userID := primitive.NewObjectID().Hex()

	t.Run("valid token passes and sets identity", func(t *testing.T) {
		router := setupAuthRouter()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, userID, "student"))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), userID)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		router := setupAuthRouter()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"id":  userID,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := other.SignedString([]byte("wrong-secret"))
		require.NoError(t, err)

		router := setupAuthRouter()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	userID := primitive.NewObjectID().Hex()

	t.Run("allowed role passes", func(t *testing.T) {
		router := setupAuthRouter("admin")
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, userID, "admin"))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other roles are forbidden", func(t *testing.T) {
		router := setupAuthRouter("admin", "organizer")
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, userID, "student"))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
