package response

import "net/http"

// CustomError is the uniform error envelope returned by handlers and usecases.
// It doubles as an error value so usecases can return it directly.
type CustomError struct {
	StatusCode int               `json:"status_code"`
	Status     bool              `json:"status"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors,omitempty"`
}

func (e *CustomError) Error() string {
	return e.Message
}

type Success struct {
	StatusCode int    `json:"status_code"`
	Status     bool   `json:"status"`
	Message    string `json:"message"`
	Payload    any    `json:"payload,omitempty"`
}

func BadRequestError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusBadRequest,
		Status:     false,
		Message:    message,
	}
}

func ValidationError(errors map[string]string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusBadRequest,
		Status:     false,
		Message:    "Validation failed",
		Errors:     errors,
	}
}

func NotFoundError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusNotFound,
		Status:     false,
		Message:    message,
	}
}

func UnauthorizedErrorWithAdditionalInfo(message string) *CustomError {
	if message == "" {
		message = "Unauthorized"
	}
	return &CustomError{
		StatusCode: http.StatusUnauthorized,
		Status:     false,
		Message:    message,
	}
}

func ConflictError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusConflict,
		Status:     false,
		Message:    message,
	}
}

// UpstreamError wraps a failure reported by the core backend. The backend's
// message is surfaced verbatim when present.
func UpstreamError(message string) *CustomError {
	if message == "" {
		message = "Internal server error"
	}
	return &CustomError{
		StatusCode: http.StatusBadGateway,
		Status:     false,
		Message:    message,
	}
}

func RepositoryError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusInternalServerError,
		Status:     false,
		Message:    message,
	}
}

func GeneralError(message string) *CustomError {
	if message == "" {
		message = "Internal server error"
	}
	return &CustomError{
		StatusCode: http.StatusInternalServerError,
		Status:     false,
		Message:    message,
	}
}

func CreatedSuccessWithPayload(payload any) *Success {
	return &Success{
		StatusCode: http.StatusCreated,
		Status:     true,
		Message:    "Created",
		Payload:    payload,
	}
}

func GeneralSuccessCustomMessageAndPayload(message string, payload any) *Success {
	return &Success{
		StatusCode: http.StatusOK,
		Status:     true,
		Message:    message,
		Payload:    payload,
	}
}
