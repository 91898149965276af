package auth

import (
	"net/http"

	"auth-api/internal/api"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 登出
// @Summary     登出使用者
// @Description 無狀態 JWT 伺服器端沒有 session 可銷毀，僅回覆成功，令牌由客戶端自行丟棄
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      /auth/logout [post]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MessageResponse{
			Success: true,
			Message: "Logged out successfully",
		})
	}
}
