// Package jerrors converts errors into the GraphQL error shape, keeping the
// argument path that produced them.
package jerrors

import (
	"errors"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Error is a GraphQL error as it appears in a response's errors list.
type Error struct {
	Message    string           `json:"message"`
	Extensions *ErrorExtensions `json:"extensions"`
	Paths      []string         `json:"paths"`
}

// ErrorExtensions carries the machine readable error code.
type ErrorExtensions struct {
	Code string `json:"code"`
}

func (e *Error) Error() string {
	return e.Message
}

// PathError ties an error to the argument or input field it was raised for.
type PathError struct {
	Path []string
	Err  error
}

func (e *PathError) Error() string {
	return strings.Join(e.Path, ".") + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// GRPCStatus keeps the code of the wrapped error and attaches the path as a
// BadRequest field violation.
func (e *PathError) GRPCStatus() *status.Status {
	st := status.New(status.Code(e.Err), e.Error())
	detailed, err := st.WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{{
			Field:       strings.Join(e.Path, "."),
			Description: e.Err.Error(),
		}},
	})
	if err != nil {
		return st
	}
	return detailed
}

// WithPath prefixes the path of err with segments. Nested calls build the path
// from the innermost field outwards.
func WithPath(err error, segments ...string) error {
	if err == nil {
		return nil
	}

	var pe *PathError
	if errors.As(err, &pe) && pe == err {
		path := make([]string, 0, len(segments)+len(pe.Path))
		path = append(path, segments...)
		path = append(path, pe.Path...)
		return &PathError{Path: path, Err: pe.Err}
	}
	return &PathError{Path: append([]string(nil), segments...), Err: err}
}

// ConvertError converts err into an Error. The code comes from the gRPC status
// carried by err, Unknown when there is none.
func ConvertError(err error) *Error {
	if err == nil {
		return nil
	}

	var converted *Error
	if errors.As(err, &converted) {
		return converted
	}

	code := codes.Unknown
	if st, ok := status.FromError(err); ok {
		code = st.Code()
	}

	paths := []string{}
	var pe *PathError
	if errors.As(err, &pe) {
		paths = append(paths, pe.Path...)
	}

	return &Error{
		Message:    err.Error(),
		Extensions: &ErrorExtensions{Code: code.String()},
		Paths:      paths,
	}
}
