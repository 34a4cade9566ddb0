package api

import "sokohub/internal/model"

// model.Provider already serializes to the client contract (camelCase,
// tolerant sub-documents), so the envelopes wrap it directly.

// swagger:model api.ProvidersResponse
type ProvidersResponse struct {
	Providers []model.Provider `json:"providers"`
}

// swagger:model api.ProviderEnvelope
type ProviderEnvelope struct {
	Message  string          `json:"message,omitempty"`
	Provider *model.Provider `json:"provider"`
}
