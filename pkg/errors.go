package pkg

// AppError carries a stable machine code, a caller-facing message and the HTTP
// status the adapters should answer with. Wrapped errors stay server-side.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the wire shape for failures: {"error": "<message>"}.
type HTTPError struct {
	Error string `json:"error"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Message}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
