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

func TestLoginHandler(t *testing.T) {
	t.Cleanup(restoreStubs)
	tokens := service.NewTokenService("s", time.Minute)
	db := &database.FakeDB{}
	hash, err := service.HashPassword("password123")
	require.NoError(t, err)

	// bind error
	e := newEcho()
	e.Binder = errBinder{}
	ctx, rec := newJSONCtx(e, "")
	h := LoginHandler(db, tokens, okCache(t, nil), syncPool{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validation error
	e = newEcho()
	ctx, rec = newJSONCtx(e, `{"email":"","password":""}`)
	h = LoginHandler(db, tokens, okCache(t, nil), syncPool{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "email is required")

	// unknown email 與 wrong password 回應必須一字不差
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, store.ErrUserNotFound
	}
	ctx, rec = newJSONCtx(e, `{"email":"ghost@example.com","password":"password123"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	notFoundBody := rec.Body.String()
	require.Contains(t, notFoundBody, "Invalid email or password")

	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return &model.User{ID: 1, Email: "john@example.com", PasswordHash: hash}, nil
	}
	ctx, rec = newJSONCtx(e, `{"email":"john@example.com","password":"wrongpass"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, notFoundBody, rec.Body.String())

	// storage failure → generic 500
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, errors.New("conn lost")
	}
	ctx, rec = newJSONCtx(e, `{"email":"john@example.com","password":"password123"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "conn lost")

	// token issue failure → 500
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return &model.User{ID: 1, Email: "john@example.com", PasswordHash: hash}, nil
	}
	h = LoginHandler(db, service.NewTokenService("", time.Minute), okCache(t, nil), syncPool{})
	ctx, rec = newJSONCtx(e, `{"email":"john@example.com","password":"password123"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success: email 正規化後查詢，令牌 claims 對得上
	var queried string
	getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
		queried = email
		return &model.User{ID: 7, Name: "John Doe", Email: "john@example.com", PasswordHash: hash}, nil
	}
	var keys []string
	h = LoginHandler(db, tokens, okCache(t, &keys), syncPool{})
	ctx, rec = newJSONCtx(e, `{"email":" John@EXAMPLE.com ","password":"password123"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "john@example.com", queried)
	require.Contains(t, rec.Body.String(), "Login successful")
	require.Equal(t, []string{"auth:last_login:7"}, keys)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	claims, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	require.Equal(t, 7, claims.UserID)
	require.Equal(t, "john@example.com", claims.Email)
	require.Equal(t, "John Doe", claims.Name)
}
