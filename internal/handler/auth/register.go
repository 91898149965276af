package auth

import (
	"errors"
	"net/http"

	"auth-api/internal/api"
	"auth-api/internal/cache"
	"auth-api/internal/database"
	"auth-api/internal/model"
	"auth-api/internal/service"
	"auth-api/internal/store"
	"auth-api/internal/worker"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立新帳號並直接發行存取令牌
// @Summary     註冊使用者
// @Description 建立新帳號 (Email 會自動修剪並轉小寫)，成功即回傳 JWT
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, tokens *service.TokenService, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		// 正規化在驗證前，email 規則看的是正規化後的值
		req.Email = normalizeEmail(req.Email)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Message: "Validation failed",
				Errors:  api.ValidationMessages(err),
			})
		}

		// 明文密碼只活到這行，落庫的一律是哈希
		hash, err := hashPassword(req.Password)
		if err != nil {
			c.Logger().Errorf("hash password: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "User with this email already exists"})
			}
			c.Logger().Errorf("create user: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		token, err := tokens.Issue(*user)
		if err != nil {
			c.Logger().Errorf("issue token: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		recordLastLogin(c, rdb, wp, user.ID)

		return c.JSON(http.StatusCreated, api.AuthResponse{
			Success: true,
			Message: "User registered successfully",
			Token:   token,
			User: api.AuthUser{
				ID:    user.ID,
				Email: user.Email,
				Name:  user.Name,
			},
		})
	}
}
