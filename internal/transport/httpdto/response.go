package httpdto

// StatusResponse is a bare {message} answer.
type StatusResponse struct {
	Message string `json:"message"`
}

// MessageResponse is the success envelope of the auth routes; data is
// always present, null included.
type MessageResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// ErrorResponse carries a human readable failure in detail.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func NewStatusResponse(message string) StatusResponse {
	return StatusResponse{Message: message}
}

func NewDataResponse[T any](message string, data T) MessageResponse[T] {
	return MessageResponse[T]{
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}
