package schemabuilder

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrMissingTypeName is returned when an enum is registered without a name.
var ErrMissingTypeName = errors.New("enum type name must not be empty")

// EmptyEnumError is returned when an enum is declared with no variants.
type EmptyEnumError struct {
	TypeName string
}

func (e *EmptyEnumError) Error() string {
	return fmt.Sprintf("enum %s must declare at least one value", e.TypeName)
}

// GRPCStatus reports a malformed schema.
func (e *EmptyEnumError) GRPCStatus() *status.Status {
	return status.New(codes.FailedPrecondition, e.Error())
}

// DuplicateValueNameError is returned when two variants resolve to the same
// effective name, whether by normalization or by override.
type DuplicateValueNameError struct {
	TypeName string
	Name     string
	First    Variant
	Second   Variant
}

func (e *DuplicateValueNameError) Error() string {
	return fmt.Sprintf("enum %s: variants %s and %s both resolve to value %s",
		e.TypeName, e.First.label(), e.Second.label(), e.Name)
}

// GRPCStatus reports a malformed schema.
func (e *DuplicateValueNameError) GRPCStatus() *status.Status {
	return status.New(codes.FailedPrecondition, e.Error())
}

// InvalidVariantError is returned for a variant whose value can not identify it.
type InvalidVariantError struct {
	TypeName string
	Index    int
	Reason   string
}

func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("enum %s: variant %d: %s", e.TypeName, e.Index, e.Reason)
}

// GRPCStatus reports a malformed schema.
func (e *InvalidVariantError) GRPCStatus() *status.Status {
	return status.New(codes.FailedPrecondition, e.Error())
}

// DuplicateTypeError is returned when a schema registers two enums under one
// type name, or binds one Go type to two enums.
type DuplicateTypeError struct {
	Name string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("duplicate enum type %s", e.Name)
}

// GRPCStatus reports a malformed schema.
func (e *DuplicateTypeError) GRPCStatus() *status.Status {
	return status.New(codes.FailedPrecondition, e.Error())
}
