package api

// swagger:model api.OfferRequest
type OfferRequest struct {
	ID              string  `json:"id"`
	ProviderID      string  `json:"providerId" validate:"required"`
	Name            string  `json:"name" validate:"required" example:"Lunch special"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price" validate:"gte=0" example:"9.99"`
	OriginalPrice   float64 `json:"originalPrice" validate:"gte=0" example:"14.99"`
	DiscountedPrice float64 `json:"discountedPrice" validate:"gte=0" example:"9.99"`
	Duration        int     `json:"duration" validate:"required,gt=0" example:"60"`
	Category        string  `json:"category" validate:"required" example:"Services"`
	Subcategory     string  `json:"subcategory" validate:"required" example:"Food & Drink"`
	Image           *string `json:"image,omitempty"`
}
