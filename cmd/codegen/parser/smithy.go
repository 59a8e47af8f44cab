package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Trait IDs read by the generator.
const (
	TraitDocumentation    = "smithy.api#documentation"
	TraitRequired         = "smithy.api#required"
	TraitJSONName         = "smithy.api#jsonName"
	TraitLength           = "smithy.api#length"
	TraitRange            = "smithy.api#range"
	TraitPattern          = "smithy.api#pattern"
	TraitEnumValue        = "smithy.api#enumValue"
	TraitHTTP             = "smithy.api#http"
	TraitHTTPLabel        = "smithy.api#httpLabel"
	TraitHTTPQuery        = "smithy.api#httpQuery"
	TraitEndpoint         = "smithy.api#endpoint"
	TraitPaginated        = "smithy.api#paginated"
	TraitIdempotencyToken = "smithy.api#idempotencyToken"
)

// SmithyAPI represents the parsed Smithy API definition
type SmithyAPI struct {
	Smithy   string                  `json:"smithy"`
	Metadata map[string]interface{}  `json:"metadata"`
	Shapes   map[string]*SmithyShape `json:"shapes"`
}

// SmithyShape represents a shape in the Smithy model
type SmithyShape struct {
	Type       string                   `json:"type"`
	Version    string                   `json:"version,omitempty"`
	Members    map[string]*SmithyMember `json:"members,omitempty"`
	Member     *SmithyMember            `json:"member,omitempty"` // For list types
	Key        *SmithyMember            `json:"key,omitempty"`    // For map types
	Value      *SmithyMember            `json:"value,omitempty"`  // For map types
	Traits     map[string]interface{}   `json:"traits,omitempty"`
	Input      *SmithyRef               `json:"input,omitempty"`
	Output     *SmithyRef               `json:"output,omitempty"`
	Errors     []SmithyRef              `json:"errors,omitempty"`
	Operations []SmithyRef              `json:"operations,omitempty"`

	// MemberOrder lists the member names in the order the model declares them.
	MemberOrder []string `json:"-"`
}

// SmithyMember represents a member of a structure
type SmithyMember struct {
	Target string                 `json:"target"`
	Traits map[string]interface{} `json:"traits,omitempty"`
}

// SmithyRef represents a reference to another shape
type SmithyRef struct {
	Target string `json:"target"`
}

// HTTPBinding is the value of the http trait of an operation.
type HTTPBinding struct {
	Method string
	URI    string
	Code   int
}

// Bounds holds the optional min and max of a length or range trait.
type Bounds struct {
	Min *int64
	Max *int64
}

// ParseSmithyJSON parses a Smithy JSON file and returns the API definition
func ParseSmithyJSON(filename string) (*SmithyAPI, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a Smithy JSON document.
func Parse(data []byte) (*SmithyAPI, error) {
	var api SmithyAPI
	if err := decodeNumbers(data, &api); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &api, nil
}

// decodeNumbers keeps trait numbers as json.Number; range bounds exceed the
// precision of float64.
func decodeNumbers(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// UnmarshalJSON decodes the shape and records the declaration order of its
// members.
func (s *SmithyShape) UnmarshalJSON(data []byte) error {
	type plain SmithyShape
	if err := decodeNumbers(data, (*plain)(s)); err != nil {
		return err
	}

	var raw struct {
		Members json.RawMessage `json:"members"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Members) == 0 {
		return nil
	}
	order, err := objectKeys(raw.Members)
	if err != nil {
		return fmt.Errorf("failed to read members: %w", err)
	}
	s.MemberOrder = order
	return nil
}

func objectKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// GetServiceShape returns the service shape from the API definition
func (api *SmithyAPI) GetServiceShape() (*SmithyShape, string, error) {
	for name, shape := range api.Shapes {
		if shape.Type == "service" {
			return shape, name, nil
		}
	}
	return nil, "", fmt.Errorf("no service shape found")
}

// GetOperations returns all operation shapes for the service
func (api *SmithyAPI) GetOperations() map[string]*SmithyShape {
	operations := make(map[string]*SmithyShape)

	serviceShape, _, err := api.GetServiceShape()
	if err != nil {
		return operations
	}

	for _, opRef := range serviceShape.Operations {
		opName := opRef.Target
		if shape, exists := api.Shapes[opName]; exists && shape.Type == "operation" {
			operations[opName] = shape
		}
	}

	return operations
}

// GetShapeName extracts the simple name from a fully qualified shape name
func GetShapeName(fqn string) string {
	parts := strings.Split(fqn, "#")
	if len(parts) > 1 {
		return parts[1]
	}
	return fqn
}

// IsRequired checks if a member is required based on its traits
func (m *SmithyMember) IsRequired() bool {
	return hasTrait(m.Traits, TraitRequired)
}

// IsIdempotencyToken reports whether the member is filled with a client token.
func (m *SmithyMember) IsIdempotencyToken() bool {
	return hasTrait(m.Traits, TraitIdempotencyToken)
}

// IsHTTPLabel reports whether the member is bound to a URI label.
func (m *SmithyMember) IsHTTPLabel() bool {
	return hasTrait(m.Traits, TraitHTTPLabel)
}

// HTTPQuery returns the query string parameter the member is bound to.
func (m *SmithyMember) HTTPQuery() (string, bool) {
	name, ok := m.Traits[TraitHTTPQuery].(string)
	return name, ok
}

// Documentation returns the member documentation.
func (m *SmithyMember) Documentation() string {
	return documentation(m.Traits)
}

// GetJSONName returns the JSON field name for a member
func (m *SmithyMember) GetJSONName(fieldName string) string {
	if m.Traits != nil {
		if jsonName, ok := m.Traits[TraitJSONName]; ok {
			if name, ok := jsonName.(string); ok {
				return name
			}
		}
	}
	// REST-JSON member names are already camelCase
	return fieldName
}

// Documentation returns the shape documentation.
func (s *SmithyShape) Documentation() string {
	return documentation(s.Traits)
}

// IsEnum checks if a shape is an enum
func (s *SmithyShape) IsEnum() bool {
	return s.Type == "enum"
}

// EnumMember is one value of an enum shape.
type EnumMember struct {
	Name  string
	Value string
}

// GetEnumMembers returns the members of an enum shape in declaration order.
// A member without an enumValue trait uses its name as the value.
func (s *SmithyShape) GetEnumMembers() []EnumMember {
	var members []EnumMember
	for _, name := range s.orderedMemberNames() {
		value := name
		if m := s.Members[name]; m != nil {
			if v, ok := m.Traits[TraitEnumValue].(string); ok {
				value = v
			}
		}
		members = append(members, EnumMember{Name: name, Value: value})
	}
	return members
}

func (s *SmithyShape) orderedMemberNames() []string {
	if len(s.MemberOrder) == len(s.Members) {
		return s.MemberOrder
	}
	names := make([]string, 0, len(s.Members))
	for name := range s.Members {
		names = append(names, name)
	}
	return names
}

// Length returns the bounds of the length trait.
func (s *SmithyShape) Length() (Bounds, bool) {
	return bounds(s.Traits, TraitLength)
}

// Range returns the bounds of the range trait.
func (s *SmithyShape) Range() (Bounds, bool) {
	return bounds(s.Traits, TraitRange)
}

// Pattern returns the regular expression of the pattern trait.
func (s *SmithyShape) Pattern() (string, bool) {
	p, ok := s.Traits[TraitPattern].(string)
	return p, ok
}

// HTTP returns the http trait of an operation.
func (s *SmithyShape) HTTP() (HTTPBinding, bool) {
	t, ok := s.Traits[TraitHTTP].(map[string]interface{})
	if !ok {
		return HTTPBinding{}, false
	}
	b := HTTPBinding{}
	b.Method, _ = t["method"].(string)
	b.URI, _ = t["uri"].(string)
	if code, ok := t["code"].(json.Number); ok {
		if n, err := code.Int64(); err == nil {
			b.Code = int(n)
		}
	}
	return b, true
}

// HostPrefix returns the hostPrefix of the endpoint trait.
func (s *SmithyShape) HostPrefix() string {
	t, ok := s.Traits[TraitEndpoint].(map[string]interface{})
	if !ok {
		return ""
	}
	prefix, _ := t["hostPrefix"].(string)
	return prefix
}

// IsPaginated reports whether the operation carries the paginated trait.
func (s *SmithyShape) IsPaginated() bool {
	return hasTrait(s.Traits, TraitPaginated)
}

// IsPrimitive checks if a shape is a primitive type
func (s *SmithyShape) IsPrimitive() bool {
	switch s.Type {
	case "string", "boolean", "byte", "short", "integer", "long",
		"float", "double", "bigInteger", "bigDecimal", "timestamp",
		"blob", "document":
		return true
	}
	return false
}

// IsCollection checks if a shape is a collection type
func (s *SmithyShape) IsCollection() bool {
	return s.Type == "list" || s.Type == "set"
}

// IsMap checks if a shape is a map type
func (s *SmithyShape) IsMap() bool {
	return s.Type == "map"
}

func hasTrait(traits map[string]interface{}, id string) bool {
	if traits == nil {
		return false
	}
	_, ok := traits[id]
	return ok
}

func documentation(traits map[string]interface{}) string {
	doc, _ := traits[TraitDocumentation].(string)
	return strings.TrimSpace(doc)
}

func bounds(traits map[string]interface{}, id string) (Bounds, bool) {
	t, ok := traits[id].(map[string]interface{})
	if !ok {
		return Bounds{}, false
	}
	return Bounds{Min: int64Of(t["min"]), Max: int64Of(t["max"])}, true
}

func int64Of(v interface{}) *int64 {
	var n int64
	switch v := v.(type) {
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil
		}
		n = i
	case float64:
		n = int64(v)
	default:
		return nil
	}
	return &n
}
