package service

import (
	"errors"
	"fmt"
	"time"

	"auth-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL 未設定時的存取令牌有效期
const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	// ErrTokenExpired 令牌已過期（簽章正確但超過 exp）
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid 簽章不符、結構損毀或演算法不符
	ErrTokenInvalid = errors.New("token invalid")
)

// 測試時可覆寫
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService 發行與驗證無狀態的存取令牌
// 簽章密鑰與 TTL 在建構時注入，不在呼叫時讀環境變數
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService 建立 TokenService；ttl <= 0 時使用 DefaultTokenTTL
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL 回傳目前設定的令牌有效期
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue 依據使用者資訊產生 HS256 JWT，負載為 {userId, email, name}
func (s *TokenService) Issue(user model.User) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("token secret not configured")
	}

	now := timeNow()
	claims := CustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify 驗證並解析 JWT 令牌
// 過期回傳 ErrTokenExpired，其餘所有失敗一律 ErrTokenInvalid
func (s *TokenService) Verify(tokenString string) (*CustomClaims, error) {
	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
