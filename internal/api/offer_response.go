package api

import "sokohub/internal/model"

// swagger:model api.OffersResponse
type OffersResponse struct {
	Offers []model.Offer `json:"offers"`
}

// swagger:model api.OfferEnvelope
type OfferEnvelope struct {
	Message string       `json:"message,omitempty"`
	Offer   *model.Offer `json:"offer"`
}
