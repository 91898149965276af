package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auth-api/internal/cache"
	"auth-api/internal/service"
	"auth-api/internal/store"
	"auth-api/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func restoreStubs() {
	hashPassword = service.HashPassword
	comparePassword = service.ComparePassword
	createUser = store.CreateUser
	getUserByEmail = store.GetUserByEmail
	getUserByID = store.GetUserByID
	timeNow = time.Now
}

// helper to build echo context with a JSON body
func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = testValidator{v: validator.New()}
	return e
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type testValidator struct{ v *validator.Validate }

func (tv testValidator) Validate(i any) error { return tv.v.Struct(i) }

// syncPool 讓 fire-and-forget 任務同步執行，測試不用等
type syncPool struct{}

func (syncPool) Submit(t worker.Task) { t() }
func (syncPool) Stop()                {}

var _ worker.Pool = syncPool{}

func okCache(t *testing.T, keys *[]string) *cache.FakeCache {
	return &cache.FakeCache{SetFn: func(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
		if keys != nil {
			*keys = append(*keys, key)
		}
		require.Equal(t, lastLoginTTL, ttl)
		return redis.NewStatusResult("OK", nil)
	}}
}
