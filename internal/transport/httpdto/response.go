package httpdto

// Response is the envelope for every JSON body the gateway writes itself.
// Relayed downstream bodies are written verbatim and never wrapped.
type Response[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func NewSuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(message string) Response[any] {
	return Response[any]{
		Message: message,
	}
}

// NewMessageResponse is a body carrying only a human-readable message.
func NewMessageResponse(message string) Response[any] {
	return Response[any]{Message: message}
}
