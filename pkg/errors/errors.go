package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation       Code = "VALIDATION_ERROR"
	CodeNotFound         Code = "NOT_FOUND"
	CodeMethodNotAllowed Code = "METHOD_NOT_ALLOWED"
	CodeConflict         Code = "CONFLICT"
	CodeUnsupportedMedia Code = "UNSUPPORTED_MEDIA_TYPE"
	CodeInternal         Code = "INTERNAL_ERROR"
)

// Metadata describes how a code surfaces at the HTTP boundary.
type Metadata struct {
	HTTPStatus    int
	ErrorText     string
	PublicMessage string
	LogAsError    bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		HTTPStatus:    http.StatusBadRequest,
		ErrorText:     "Bad Request",
		PublicMessage: "request could not be processed",
	},
	CodeNotFound: {
		HTTPStatus:    http.StatusNotFound,
		ErrorText:     "Not Found",
		PublicMessage: "resource not found",
	},
	CodeMethodNotAllowed: {
		HTTPStatus:    http.StatusMethodNotAllowed,
		ErrorText:     "Method Not Allowed",
		PublicMessage: "method is not supported for this resource",
	},
	CodeConflict: {
		HTTPStatus:    http.StatusConflict,
		ErrorText:     "Conflict",
		PublicMessage: "conflict detected",
	},
	CodeUnsupportedMedia: {
		HTTPStatus:    http.StatusUnsupportedMediaType,
		ErrorText:     "Unsupported media type",
		PublicMessage: "unsupported media type",
	},
	CodeInternal: {
		HTTPStatus:    http.StatusInternalServerError,
		ErrorText:     "Internal Server Error",
		PublicMessage: "internal server error",
		LogAsError:    true,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

// WithDetails attaches machine-readable context, e.g. the offending
// field name and a failure reason, so callers can branch without
// matching on message text.
func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
