package iotsitewise

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws/request"
)

// ParamMaxValueErrCode is the error code for a value above the modeled maximum.
const ParamMaxValueErrCode = "ParamMaxValueError"

var _ request.ErrInvalidParam = (*ErrParamMaxValue)(nil)

// ErrParamMaxValue reports a numeric field above its modeled maximum. It
// complements request.ErrParamMinValue and can be added to a
// request.ErrInvalidParams.
type ErrParamMaxValue struct {
	context       string
	nestedContext string
	field         string
	max           int64
	value         int64
}

func newErrParamMaxValue(field string, max, value int64) *ErrParamMaxValue {
	return &ErrParamMaxValue{field: field, max: max, value: value}
}

// Code returns the error code for the type of invalid parameter.
func (e *ErrParamMaxValue) Code() string {
	return ParamMaxValueErrCode
}

// Message returns the reason the parameter was invalid, and its context.
func (e *ErrParamMaxValue) Message() string {
	return fmt.Sprintf("maximum field value of %v, %s.", e.max, e.Field())
}

// Error returns the string version of the invalid parameter error.
func (e *ErrParamMaxValue) Error() string {
	return fmt.Sprintf("%s: %s", ParamMaxValueErrCode, e.Message())
}

// OrigErr returns nil, the error has no underlying cause.
func (e *ErrParamMaxValue) OrigErr() error {
	return nil
}

// Field returns the field and context the error occurred in.
func (e *ErrParamMaxValue) Field() string {
	field := e.context
	if len(field) > 0 {
		field += "."
	}
	if len(e.nestedContext) > 0 {
		field += e.nestedContext + "."
	}
	return field + e.field
}

// SetContext updates the base context of the error.
func (e *ErrParamMaxValue) SetContext(ctx string) {
	e.context = ctx
}

// AddNestedContext prepends a context to the field's path.
func (e *ErrParamMaxValue) AddNestedContext(ctx string) {
	if len(e.nestedContext) == 0 {
		e.nestedContext = ctx
	} else {
		e.nestedContext = fmt.Sprintf("%s.%s", ctx, e.nestedContext)
	}
}

// MaxValue returns the field's maximum allowed value.
func (e *ErrParamMaxValue) MaxValue() int64 {
	return e.max
}

// Value returns the rejected value.
func (e *ErrParamMaxValue) Value() int64 {
	return e.value
}
