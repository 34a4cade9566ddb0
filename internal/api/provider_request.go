package api

// ProviderRequest carries the multipart form fields shared by provider create
// and update. OpeningHours and ExistingImages arrive as serialized JSON
// strings; uploaded image files travel outside the bound struct. UserID is
// honored only on the admin routes.
// swagger:model api.ProviderRequest
type ProviderRequest struct {
	ID             string  `form:"id"`
	UserID         *string `form:"user_id"`
	Name           string  `form:"name" validate:"required" example:"Shop"`
	Username       string  `form:"username" validate:"required" example:"shop1"`
	City           string  `form:"city" validate:"required" example:"Nairobi"`
	ZipCode        *string `form:"zip_code"`
	Location       *string `form:"location"`
	Phone          *string `form:"phone"`
	Email          *string `form:"email"`
	Website        *string `form:"website"`
	Description    *string `form:"description"`
	Category       string  `form:"category" validate:"required" example:"Products"`
	Subcategory    string  `form:"subcategory" validate:"required" example:"Fashion & Apparel"`
	Address        *string `form:"address"`
	OpeningHours   string  `form:"openingHours"`
	ExistingImages string  `form:"existingImages"`
}
