package middleware

import (
	"errors"
	"net/http"
	"strings"

	"auth-api/internal/api"
	"auth-api/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextUserKey 驗證通過後 claims 存放在 echo context 的鍵
const ContextUserKey = "user"

// RequireAuth 保護端點的純閘門：
// 缺 Authorization 標頭或格式錯誤回 401，驗證失敗回 403，
// 通過則把 claims 掛進 context 再交給下游 handler
func RequireAuth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing token"})
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid authorization header format"})
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				msg := "invalid token"
				if errors.Is(err, service.ErrTokenExpired) {
					msg = "token expired"
				}
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: msg})
			}

			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}
