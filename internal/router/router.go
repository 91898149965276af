// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"auth-api/internal/cache"
	"auth-api/internal/database"
	"auth-api/internal/handler"
	"auth-api/internal/handler/auth"
	"auth-api/internal/middleware"
	"auth-api/internal/service"
	"auth-api/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, tokens *service.TokenService, wp worker.Pool) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, rdb))

	// 註冊 / 登入 / 登出 / 個人資料
	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(db, tokens, rdb, wp))
	apiAuth.POST("/login", auth.LoginHandler(db, tokens, rdb, wp))
	apiAuth.POST("/logout", auth.LogoutHandler())
	apiAuth.GET("/profile", auth.ProfileHandler(db), middleware.RequireAuth(tokens))
}
