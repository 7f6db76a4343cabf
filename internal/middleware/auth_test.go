package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/SuzdalevAndrey/TaskManager/internal/domain"
	"github.com/SuzdalevAndrey/TaskManager/internal/token"
)

type middlewareFixture struct {
	router *gin.Engine
	codec  *token.Codec
	store  token.Store
	mr     *miniredis.Miniredis
}

func newMiddlewareFixture(t *testing.T) *middlewareFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	codec := token.NewCodec("test-secret")
	store := token.NewRedisStore(rdb, 15*time.Minute, 24*time.Hour)
	validator := token.NewValidator(codec, store)

	router := gin.New()
	router.Use(Authenticate(validator))
	router.GET("/open", func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"principal": "anonymous"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"principal": p.Email, "role": string(p.Role)})
	})
	router.GET("/private", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return &middlewareFixture{router: router, codec: codec, store: store, mr: mr}
}

// issue mints an access token and records it, mirroring a login
func (f *middlewareFixture) issue(t *testing.T, email string, role domain.Role) string {
	t.Helper()
	tok, err := f.codec.Encode(email, role)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := f.store.Put(context.Background(), token.KindAccess, email, tok); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	return tok
}

func (f *middlewareFixture) do(method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	t.Run("no header passes through anonymous", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		w := f.do(http.MethodGet, "/open", "")
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("valid token sets principal", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		tok := f.issue(t, "alice@example.com", domain.RoleUser)
		w := f.do(http.MethodGet, "/open", tok)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "alice@example.com") || !strings.Contains(body, "USER") {
			t.Errorf("body = %s", body)
		}
	})

	t.Run("invalid token rejected even on open route", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		w := f.do(http.MethodGet, "/open", "not-a-jwt")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("well-signed token without a store entry is rejected", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		tok, err := f.codec.Encode("alice@example.com", domain.RoleUser)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		w := f.do(http.MethodGet, "/open", tok)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("evicted token is rejected", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		tok := f.issue(t, "alice@example.com", domain.RoleUser)
		if err := f.store.Evict(context.Background(), "alice@example.com"); err != nil {
			t.Fatalf("Evict() error = %v", err)
		}
		w := f.do(http.MethodGet, "/open", tok)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("store outage maps to 500, not 401", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		tok := f.issue(t, "alice@example.com", domain.RoleUser)
		f.mr.Close()
		w := f.do(http.MethodGet, "/open", tok)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", w.Code)
		}
	})

	t.Run("non-bearer scheme passes through anonymous", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})
}

func TestRequireAuth(t *testing.T) {
	t.Run("anonymous is rejected", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		w := f.do(http.MethodGet, "/private", "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("authenticated passes", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		tok := f.issue(t, "alice@example.com", domain.RoleUser)
		w := f.do(http.MethodGet, "/private", tok)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("anonymous is rejected with 401", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		w := f.do(http.MethodGet, "/admin", "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("user role is rejected with 403", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		tok := f.issue(t, "alice@example.com", domain.RoleUser)
		w := f.do(http.MethodGet, "/admin", tok)
		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})

	t.Run("admin passes", func(t *testing.T) {
		f := newMiddlewareFixture(t)
		tok := f.issue(t, "admin@example.com", domain.RoleAdmin)
		w := f.do(http.MethodGet, "/admin", tok)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})
}
