package models

// Error messages returned by the API
const (
	MsgRestaurantNotFound  = "Restaurant not found"
	MsgValidationErrors    = "validation errors"
	MsgInvalidPizzaID      = "Invalid pizza_id"
	MsgInvalidRestaurantID = "Invalid restaurant_id"
)

// ErrorResponse is the body returned when a resource does not exist
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the body returned for validation and server failures
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorsResponse creates an ErrorsResponse holding the given messages
func NewErrorsResponse(messages ...string) ErrorsResponse {
	return ErrorsResponse{Errors: messages}
}
