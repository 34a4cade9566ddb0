package api

// UpdateProfileRequest carries the multipart form fields of PUT /api/user.
// The avatar file itself travels outside the bound struct.
// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Name  string  `form:"name" validate:"required" example:"Alice"`
	Email string  `form:"email" validate:"required,email" example:"alice@example.com"`
	Phone *string `form:"phone" example:"+254700000000"`
}
