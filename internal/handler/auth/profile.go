package auth

import (
	"errors"
	"net/http"

	"auth-api/internal/api"
	"auth-api/internal/database"
	"auth-api/internal/middleware"
	"auth-api/internal/service"
	"auth-api/internal/store"

	"github.com/labstack/echo/v4"
)

// ProfileHandler 取得當前使用者個人資料
// @Summary     取得個人資料
// @Description 透過 JWT Token 取得當前使用者的公開欄位與註冊時間
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.ProfileResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/profile [get]
func ProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		// 令牌有效但帳號可能已不存在
		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found"})
			}
			c.Logger().Errorf("get user by id: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		return c.JSON(http.StatusOK, api.ProfileResponse{
			Success: true,
			User: api.ProfileUser{
				ID:        user.ID,
				Email:     user.Email,
				Name:      user.Name,
				CreatedAt: user.CreatedAt,
			},
		})
	}
}
