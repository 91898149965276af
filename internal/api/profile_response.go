package api

import "time"

// ProfileUser 個人資料回應的使用者欄位，含註冊時間
// swagger:model api.ProfileUser
type ProfileUser struct {
	ID        int       `json:"id" example:"1"`
	Email     string    `json:"email" example:"alice@example.com"`
	Name      string    `json:"name" example:"Alice"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
}

// swagger:model api.ProfileResponse
type ProfileResponse struct {
	Success bool        `json:"success" example:"true"`
	User    ProfileUser `json:"user"`
}
