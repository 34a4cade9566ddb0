package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Name     string  `json:"name" validate:"required" example:"Alice"`
	Email    string  `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string  `json:"password" validate:"required,min=8" example:"Secret123!"`
	Phone    *string `json:"phone,omitempty" example:"+254700000000"`
	Avatar   *string `json:"avatar,omitempty" validate:"omitempty,url" example:"https://example.com/a.png"`
}
