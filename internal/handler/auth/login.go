package auth

import (
	"errors"
	"net/http"

	"auth-api/internal/api"
	"auth-api/internal/cache"
	"auth-api/internal/database"
	"auth-api/internal/service"
	"auth-api/internal/store"
	"auth-api/internal/worker"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 驗證 Email 與 Password，成功回傳存取令牌與公開欄位
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, tokens *service.TokenService, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		req.Email = normalizeEmail(req.Email)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Message: "Validation failed",
				Errors:  api.ValidationMessages(err),
			})
		}

		// 查無帳號與密碼錯誤回同一句話，避免帳號枚舉
		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Invalid email or password"})
			}
			c.Logger().Errorf("get user by email: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		if err := comparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Invalid email or password"})
		}

		token, err := tokens.Issue(*user)
		if err != nil {
			c.Logger().Errorf("issue token: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		recordLastLogin(c, rdb, wp, user.ID)

		return c.JSON(http.StatusOK, api.AuthResponse{
			Success: true,
			Message: "Login successful",
			Token:   token,
			User: api.AuthUser{
				ID:    user.ID,
				Email: user.Email,
				Name:  user.Name,
			},
		})
	}
}
