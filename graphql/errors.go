package graphql

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnknownEnumValueError is returned when an input name matches no value of the
// enum. It is never defaulted and coercion is not retried.
type UnknownEnumValueError struct {
	TypeName string
	Value    string
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("enumeration type %q does not contain the value %q", e.TypeName, e.Value)
}

// GRPCStatus reports the error as an invalid argument with a BadRequest field
// violation on the enum type. jerrors.WithPath replaces the field with the
// argument path.
func (e *UnknownEnumValueError) GRPCStatus() *status.Status {
	st := status.New(codes.InvalidArgument, e.Error())
	detailed, err := st.WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{{
			Field:       e.TypeName,
			Description: e.Error(),
		}},
	})
	if err != nil {
		return st
	}
	return detailed
}

// InvalidVariantValueError is returned when a value handed to output coercion is
// not one of the declared variants of the enum.
type InvalidVariantValueError struct {
	TypeName string
	Value    interface{}
}

func (e *InvalidVariantValueError) Error() string {
	return fmt.Sprintf("%v (%T) is not a variant of enumeration type %q", e.Value, e.Value, e.TypeName)
}

// GRPCStatus reports the error as internal: a resolver produced a bad value.
func (e *InvalidVariantValueError) GRPCStatus() *status.Status {
	return status.New(codes.Internal, e.Error())
}
