package api

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"record not found"`
}
