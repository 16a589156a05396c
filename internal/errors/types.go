package errors

// represents a standardized error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}
