package errors

import "net/http"

// Code classifies an error independently of the transport that reports it
type Code string

// Error codes produced by the battle service. Anything a gRPC peer sends that
// is not listed here is read back as CodeInternal.
const (
	CodeOK               Code = "OK"
	CodeCanceled         Code = "CANCELED"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeUnimplemented    Code = "UNIMPLEMENTED"
	CodeInternal         Code = "INTERNAL"
	CodeUnavailable      Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the status the REST handlers answer with
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeCanceled:
		return http.StatusRequestTimeout
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnimplemented:
		return http.StatusNotImplemented
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
