package api

// IsFeatured is a pointer so an explicit false still satisfies required.
// swagger:model api.FeaturedRequest
type FeaturedRequest struct {
	IsFeatured *bool `json:"isFeatured" validate:"required"`
}
