package api

// MessageResponse 僅帶訊息的成功回應（登出）
// swagger:model api.MessageResponse
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Logged out successfully"`
}
