package api

// AuthUser 對外公開的使用者欄位，不含密碼哈希
// swagger:model api.AuthUser
type AuthUser struct {
	ID    int    `json:"id" example:"1"`
	Email string `json:"email" example:"alice@example.com"`
	Name  string `json:"name" example:"Alice"`
}

// AuthResponse 註冊與登入成功的回應格式
// swagger:model api.AuthResponse
type AuthResponse struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message" example:"Login successful"`
	Token   string   `json:"token" example:"eyJhbGciOi..."`
	User    AuthUser `json:"user"`
}
