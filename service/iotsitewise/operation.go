package iotsitewise

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrUnknownOperation is returned when an operation name is not part of the
// service model.
var ErrUnknownOperation = errors.New("unknown operation")

// Request is implemented by the input type of every operation.
type Request interface {
	Validate() error
	String() string
}

// Operation describes one API operation: how it is addressed over HTTP and
// which types carry its input and output.
type Operation struct {
	Name          string
	Documentation string
	Method        string
	// Path is the URI template, with labels such as {assetId}.
	Path string
	// HostPrefix is prepended to the service host name, e.g. "api.".
	HostPrefix string
	Paginated  bool
	// Idempotent operations accept a client token.
	Idempotent bool

	newRequest func() Request
	newResult  func() any
}

// NewRequest returns a new, empty input value for the operation.
func (o *Operation) NewRequest() Request {
	return o.newRequest()
}

// NewResult returns a new, empty output value for the operation.
func (o *Operation) NewResult() any {
	return o.newResult()
}

// Group returns the first path segment after any date version prefix, for
// example "assets" or "gateways".
func (o *Operation) Group() string {
	for _, seg := range strings.Split(strings.Trim(o.Path, "/"), "/") {
		if seg == "" || isDateSegment(seg) {
			continue
		}
		return seg
	}
	return ""
}

func isDateSegment(seg string) bool {
	if len(seg) != 8 {
		return false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Field describes one member of an operation's input.
type Field struct {
	Name     string `json:"name"`
	JSONName string `json:"jsonName"`
	Type     string `json:"type"`
	// Location is "uri", "querystring" or empty for the body.
	Location string `json:"location,omitempty"`
	Required bool   `json:"required"`
}

// RequestFields lists the members of the operation's input in declaration
// order.
func (o *Operation) RequestFields() []Field {
	t := reflect.TypeOf(o.newRequest()).Elem()
	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		jsonName, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		fields = append(fields, Field{
			Name:     sf.Name,
			JSONName: jsonName,
			Type:     strings.TrimPrefix(sf.Type.String(), "*"),
			Location: sf.Tag.Get("location"),
			Required: sf.Tag.Get("required") == "true",
		})
	}
	return fields
}

// Operations returns every operation of the service, ordered by name. Each
// entry is a copy, so changes made by the caller do not reach the catalog.
func Operations() []*Operation {
	out := make([]*Operation, len(operations))
	for i, op := range operations {
		c := *op
		out[i] = &c
	}
	return out
}

// LookupOperation finds an operation by name, ignoring case.
func LookupOperation(name string) (*Operation, error) {
	for _, op := range operations {
		if strings.EqualFold(op.Name, name) {
			return op, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// OperationFor returns the operation whose input type is req's type.
func OperationFor(req Request) (*Operation, error) {
	t := reflect.TypeOf(req)
	if t == nil {
		return nil, fmt.Errorf("%w: nil request", ErrUnknownOperation)
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name, ok := strings.CutSuffix(t.Name(), "Request")
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a request type", ErrUnknownOperation, t.Name())
	}
	return LookupOperation(name)
}
