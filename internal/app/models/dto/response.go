package dto

// MessageResponse is the uniform envelope for responses that carry no payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewErrorResponse builds a failure envelope
func NewErrorResponse(message string) MessageResponse {
	return MessageResponse{Success: false, Message: message}
}

// NewMessageResponse builds a success envelope with only a message
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}
