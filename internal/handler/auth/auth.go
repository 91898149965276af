// Package auth 實作註冊、登入、登出與個人資料端點
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"auth-api/internal/cache"
	"auth-api/internal/service"
	"auth-api/internal/store"
	"auth-api/internal/worker"

	"github.com/labstack/echo/v4"
)

// 測試時可覆寫的協作者
var (
	hashPassword    = service.HashPassword
	comparePassword = service.ComparePassword
	createUser      = store.CreateUser
	getUserByEmail  = store.GetUserByEmail
	getUserByID     = store.GetUserByID
	timeNow         = time.Now
)

const (
	lastLoginKeyPrefix = "auth:last_login:"
	lastLoginTTL       = 30 * 24 * time.Hour
)

// normalizeEmail 修剪並轉小寫，登入鍵以此為準
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// recordLastLogin 透過 worker pool 非同步記下最後登入時間
// 純粹 best-effort，失敗只記 log，不影響回應
func recordLastLogin(c echo.Context, rdb cache.Cache, wp worker.Pool, userID int) {
	logger := c.Logger()
	wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		key := fmt.Sprintf("%s%d", lastLoginKeyPrefix, userID)
		if err := rdb.Set(ctx, key, timeNow().Format(time.RFC3339), lastLoginTTL).Err(); err != nil {
			logger.Errorf("record last login for user %d: %v", userID, err)
		}
	})
}
