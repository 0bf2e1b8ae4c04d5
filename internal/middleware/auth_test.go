package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mazation/praktikaBack/internal/model"
)

const secret = "test-secret"

func signToken(t *testing.T, claims model.Claims, key string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func newRouter() (*gin.Engine, *model.Principal) {
	gin.SetMode(gin.TestMode)
	var got model.Principal
	r := gin.New()
	r.Use(AuthMiddleware(secret))
	r.GET("/probe", func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if ok {
			got = principal
		}
		c.Status(http.StatusOK)
	})
	return r, &got
}

func TestAuthMiddleware_ResolvesPrincipal(t *testing.T) {
	router, got := newRouter()

	token := signToken(t, model.Claims{
		UserID:    7,
		Email:     "t@example.com",
		IsTeacher: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, secret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got.ID != 7 || got.Email != "t@example.com" || !got.IsTeacher {
		t.Errorf("principal = %+v", got)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	expired := signToken(t, model.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, secret)
	wrongKey := signToken(t, model.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, "other-secret")

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.token"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "wrong key", header: "Bearer " + wrongKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, _ := newRouter()
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}
