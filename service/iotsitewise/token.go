package iotsitewise

import (
	"reflect"

	"github.com/google/uuid"
)

var stringPtrType = reflect.TypeOf((*string)(nil))

// EnsureClientToken sets a random UUID as the ClientToken of req when the
// request type has one and it is unset. It returns the token the request
// carries afterwards, or "" when the request has no ClientToken member.
func EnsureClientToken(req Request) string {
	v := reflect.ValueOf(req)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ""
	}
	f := v.Elem().FieldByName("ClientToken")
	if !f.IsValid() || f.Type() != stringPtrType {
		return ""
	}
	if !f.IsNil() && f.Elem().String() != "" {
		return f.Elem().String()
	}
	token := uuid.NewString()
	f.Set(reflect.ValueOf(&token))
	return token
}
