package errors

// ErrorResponse is the body of every non-form error reply
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail never carries the internal error text
type ErrorDetail struct {
	Message   string         `json:"message"`
	Code      string         `json:"code"`
	RequestID string         `json:"request_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// NewErrorResponse renders err for a client
func NewErrorResponse(err error, requestID string) ErrorResponse {
	details := SafeDetails(err)
	if len(details) == 0 {
		details = nil
	}
	return ErrorResponse{
		Error: ErrorDetail{
			Message:   DisplayMessage(err),
			Code:      Code(err),
			RequestID: requestID,
			Details:   details,
		},
	}
}
