package pkg

// AppError is the error shape that crosses the HTTP boundary: a stable
// machine-readable code, a human message and the status to respond with.
// Internal causes are kept for logging and never serialized to the caller.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDomainError builds an AppError wrapping an internal cause.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds an AppError with no internal cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the serialized error envelope.
type HTTPError struct {
	Error HTTPErrorBody `json:"error"`
}

type HTTPErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTPError converts the AppError into the response envelope. The internal
// cause is dropped here on purpose.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: HTTPErrorBody{Code: e.Code, Message: e.Message}}
}
