package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"auth-api/internal/database"
	"auth-api/internal/model"
	"auth-api/internal/service"
	"auth-api/internal/store"

	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	t.Cleanup(restoreStubs)
	tokens := service.NewTokenService("s", time.Minute)
	db := &database.FakeDB{}

	// bind error
	e := newEcho()
	e.Binder = errBinder{}
	ctx, rec := newJSONCtx(e, "")
	h := RegisterHandler(db, tokens, okCache(t, nil), syncPool{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validation error carries per-field messages
	e = newEcho()
	ctx, rec = newJSONCtx(e, `{"name":"J","email":"not-an-email","password":"123"}`)
	h = RegisterHandler(db, tokens, okCache(t, nil), syncPool{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "name must be at least 2 characters")
	require.Contains(t, rec.Body.String(), "email must be a valid email address")
	require.Contains(t, rec.Body.String(), "password must be at least 6 characters")

	// hash failure → 500
	e = newEcho()
	ctx, rec = newJSONCtx(e, `{"name":"John Doe","email":"john@example.com","password":"password123"}`)
	hashPassword = func(string) (string, error) { return "", errors.New("hash") }
	h = RegisterHandler(db, tokens, okCache(t, nil), syncPool{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	restoreStubs()

	// duplicate email → 400 with the canonical message
	e = newEcho()
	ctx, rec = newJSONCtx(e, `{"name":"John Doe","email":"john@example.com","password":"password123"}`)
	createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
		return nil, store.ErrDuplicateEmail
	}
	h = RegisterHandler(db, tokens, okCache(t, nil), syncPool{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "User with this email already exists")

	// storage failure → generic 500
	ctx, rec = newJSONCtx(e, `{"name":"John Doe","email":"john@example.com","password":"password123"}`)
	createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
		return nil, errors.New("conn lost")
	}
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Internal server error")
	require.NotContains(t, rec.Body.String(), "conn lost")

	// token issue failure → 500
	ctx, rec = newJSONCtx(e, `{"name":"John Doe","email":"john@example.com","password":"password123"}`)
	createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
		u.ID = 1
		u.CreatedAt = time.Now()
		return u, nil
	}
	h = RegisterHandler(db, service.NewTokenService("", time.Minute), okCache(t, nil), syncPool{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success: email 正規化、密碼落庫前哈希、回 201 與可驗證的令牌
	var stored model.User
	createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
		u.ID = 42
		u.CreatedAt = time.Now()
		stored = *u
		return u, nil
	}
	var keys []string
	ctx, rec = newJSONCtx(e, `{"name":"John Doe","email":"  John@Example.COM  ","password":"password123"}`)
	h = RegisterHandler(db, tokens, okCache(t, &keys), syncPool{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "john@example.com", stored.Email)
	require.NotEqual(t, "password123", stored.PasswordHash)
	require.NoError(t, service.ComparePassword(stored.PasswordHash, "password123"))
	require.Contains(t, rec.Body.String(), `"success":true`)
	require.Contains(t, rec.Body.String(), "User registered successfully")
	require.NotContains(t, rec.Body.String(), stored.PasswordHash)
	require.Equal(t, []string{"auth:last_login:42"}, keys)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    int    `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 42, resp.User.ID)
	require.Equal(t, "john@example.com", resp.User.Email)
	require.Equal(t, "John Doe", resp.User.Name)
	claims, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	require.Equal(t, 42, claims.UserID)
	require.Equal(t, "john@example.com", claims.Email)
	require.Equal(t, "John Doe", claims.Name)
}
