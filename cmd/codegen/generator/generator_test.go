package generator

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/sitewise/cmd/codegen/parser"
)

const fixture = `{
	"smithy": "2.0",
	"shapes": {
		"com.example#Service": {
			"type": "service",
			"operations": [
				{"target": "com.example#ListWidgets"},
				{"target": "com.example#CreateWidget"}
			]
		},
		"com.example#CreateWidget": {
			"type": "operation",
			"input": {"target": "com.example#CreateWidgetRequest"},
			"output": {"target": "com.example#CreateWidgetResponse"},
			"traits": {
				"smithy.api#http": {"method": "POST", "uri": "/widgets", "code": 202},
				"smithy.api#endpoint": {"hostPrefix": "api."},
				"smithy.api#documentation": "Creates a widget."
			}
		},
		"com.example#ListWidgets": {
			"type": "operation",
			"input": {"target": "com.example#ListWidgetsRequest"},
			"output": {"target": "com.example#ListWidgetsResponse"},
			"traits": {
				"smithy.api#http": {"method": "GET", "uri": "/widgets", "code": 200},
				"smithy.api#endpoint": {"hostPrefix": "data."},
				"smithy.api#paginated": {"inputToken": "nextToken", "outputToken": "nextToken"}
			}
		},
		"com.example#CreateWidgetRequest": {
			"type": "structure",
			"members": {
				"widgetName": {
					"target": "com.example#Name",
					"traits": {"smithy.api#required": {}, "smithy.api#documentation": "A friendly name for the widget."}
				},
				"parts": {"target": "com.example#Parts"},
				"clientToken": {"target": "smithy.api#String", "traits": {"smithy.api#idempotencyToken": {}}},
				"tags": {"target": "com.example#TagMap"},
				"payload": {"target": "com.example#Payload"}
			}
		},
		"com.example#CreateWidgetResponse": {
			"type": "structure",
			"members": {
				"widgetId": {"target": "smithy.api#String", "traits": {"smithy.api#required": {}}},
				"createdAt": {"target": "com.example#Timestamp"},
				"state": {"target": "com.example#WidgetState"}
			}
		},
		"com.example#ListWidgetsRequest": {
			"type": "structure",
			"members": {
				"nextToken": {"target": "smithy.api#String", "traits": {"smithy.api#httpQuery": "nextToken"}},
				"maxResults": {"target": "com.example#MaxResults", "traits": {"smithy.api#httpQuery": "maxResults"}}
			}
		},
		"com.example#ListWidgetsResponse": {
			"type": "structure",
			"members": {
				"nextToken": {"target": "smithy.api#String"}
			}
		},
		"com.example#Part": {
			"type": "structure",
			"members": {
				"offset": {"target": "com.example#Offset", "traits": {"smithy.api#required": {}}}
			},
			"traits": {"smithy.api#documentation": "Contains a part of a widget."}
		},
		"com.example#Parts": {"type": "list", "member": {"target": "com.example#Part"}},
		"com.example#TagMap": {"type": "map", "key": {"target": "smithy.api#String"}, "value": {"target": "smithy.api#String"}},
		"com.example#Payload": {"type": "blob", "traits": {"smithy.api#length": {"min": 1}}},
		"com.example#Timestamp": {"type": "timestamp"},
		"com.example#Name": {
			"type": "string",
			"traits": {
				"smithy.api#length": {"min": 1, "max": 256},
				"smithy.api#pattern": "[^\\u0000-\\u001F\\u007F]+"
			}
		},
		"com.example#MaxResults": {"type": "integer", "traits": {"smithy.api#range": {"min": 1, "max": 250}}},
		"com.example#Offset": {"type": "integer", "traits": {"smithy.api#range": {"min": 0, "max": 999999999}}},
		"com.example#WidgetState": {
			"type": "enum",
			"members": {
				"IN_SYNC": {"target": "smithy.api#Unit", "traits": {"smithy.api#enumValue": "IN_SYNC"}},
				"FAILED": {"target": "smithy.api#Unit", "traits": {"smithy.api#enumValue": "FAILED"}}
			},
			"traits": {"smithy.api#documentation": "The state of a widget."}
		}
	}
}`

func render(t *testing.T, doc string) map[string]string {
	t.Helper()
	api, err := parser.Parse([]byte(doc))
	require.NoError(t, err)

	files, err := New("example", t.TempDir()).Render(api)
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for name, content := range files {
		out[name] = string(content)
	}
	return out
}

func TestRenderTypes(t *testing.T) {
	types := render(t, fixture)["types.go"]

	assert.True(t, strings.HasPrefix(types, "// Code generated by cmd/codegen. DO NOT EDIT.\n\npackage example\n"))
	assert.Contains(t, types, "// CreateWidgetRequest is the input of the CreateWidget operation.\ntype CreateWidgetRequest struct {")
	assert.Contains(t, types, "// CreateWidgetResult is the output of the CreateWidget operation.\ntype CreateWidgetResult struct {")
	assert.Contains(t, types, "// Part contains a part of a widget.\ntype Part struct {")
	assert.NotContains(t, types, "CreateWidgetResponse")

	// fields are sorted, documented and tagged
	assert.Contains(t, types, "\t// A friendly name for the widget.\n\tWidgetName *string `json:\"widgetName,omitempty\" required:\"true\"`")
	assert.Contains(t, types, "MaxResults *int32 `json:\"maxResults,omitempty\" location:\"querystring\" locationName:\"maxResults\"`")
	assert.Contains(t, types, "Parts []*Part `json:\"parts,omitempty\"`")
	assert.Contains(t, types, "Tags map[string]string `json:\"tags,omitempty\"`")
	assert.Contains(t, types, "Payload []byte `json:\"payload,omitempty\"`")
	assert.Contains(t, types, "CreatedAt *common.UnixTime `json:\"createdAt,omitempty\"`")
	assert.Contains(t, types, "State *WidgetState `json:\"state,omitempty\"`")
	assert.Less(t, strings.Index(types, "\tClientToken *string"), strings.Index(types, "\tWidgetName *string"))

	// imports and patterns
	assert.Contains(t, types, "\"unicode/utf8\"")
	assert.Contains(t, types, "\"github.com/nandemo-ya/sitewise/internal/common\"")
	assert.Contains(t, types, "patternName = regexp.MustCompile(`[^\\x{0000}-\\x{001F}\\x{007F}]+`)")
}

func TestRenderValidate(t *testing.T) {
	types := render(t, fixture)["types.go"]

	assert.Contains(t, types, "func (s *CreateWidgetRequest) Validate() error {")
	assert.Contains(t, types, "func (s *ListWidgetsRequest) Validate() error {")
	assert.Contains(t, types, "func (s *Part) Validate() error {")
	assert.NotContains(t, types, "func (s *CreateWidgetResult) Validate() error {")
	assert.NotContains(t, types, "func (s *ListWidgetsResult) Validate() error {")
	assert.Contains(t, types, "func (s *Part) Validate() error {\n\tif s == nil {\n\t\treturn nil\n\t}\n\tinvalidParams := request.ErrInvalidParams{Context: \"Part\"}")

	assert.Contains(t, types, `invalidParams.Add(request.NewErrParamRequired("WidgetName"))`)
	assert.Contains(t, types, `invalidParams.Add(request.NewErrParamMinLen("WidgetName", 1))`)
	assert.Contains(t, types, `invalidParams.Add(request.NewErrParamMaxLen("WidgetName", 256, *s.WidgetName))`)
	assert.Contains(t, types, `invalidParams.Add(request.NewErrParamFormat("WidgetName", patternName.String(), *s.WidgetName))`)
	assert.Contains(t, types, `invalidParams.Add(request.NewErrParamMinLen("Payload", 1))`)
	assert.Contains(t, types, `invalidParams.Add(request.NewErrParamMinValue("MaxResults", 1))`)
	assert.Contains(t, types, `invalidParams.Add(newErrParamMaxValue("MaxResults", 250, int64(*s.MaxResults)))`)
	assert.Contains(t, types, `invalidParams.Add(request.NewErrParamMinValue("Offset", 0))`)
	assert.Contains(t, types, `invalidParams.AddNested(fmt.Sprintf("%s[%v]", "Parts", i), err.(request.ErrInvalidParams))`)
}

func TestRenderAccessors(t *testing.T) {
	types := render(t, fixture)["types.go"]

	assert.Contains(t, types, "func (s *CreateWidgetRequest) GetWidgetName() string {\n\tif s == nil || s.WidgetName == nil {\n\t\treturn \"\"\n\t}")
	assert.Contains(t, types, "func (s *CreateWidgetRequest) SetWidgetName(v string) *CreateWidgetRequest {\n\ts.WidgetName = &v")
	assert.Contains(t, types, "func (s *ListWidgetsRequest) GetMaxResults() int32 {\n\tif s == nil || s.MaxResults == nil {\n\t\treturn 0\n\t}")
	assert.Contains(t, types, "func (s *CreateWidgetResult) GetCreatedAt() time.Time {")
	assert.Contains(t, types, "s.CreatedAt = common.NewUnixTime(v)")
	assert.Contains(t, types, "func (s *CreateWidgetResult) GetState() WidgetState {")
	assert.Contains(t, types, "func (s *CreateWidgetRequest) GetParts() []*Part {\n\tif s == nil {\n\t\treturn nil\n\t}")
	assert.Contains(t, types, "func (s *CreateWidgetRequest) SetTags(v map[string]string) *CreateWidgetRequest {")
	assert.Contains(t, types, "func (s Part) String() string {\n\treturn awsutil.Prettify(s)\n}")
	assert.Contains(t, types, "func (s *Part) Equal(other *Part) bool {\n\treturn modelEqual(s, other)\n}")
	assert.Contains(t, types, "func (s *Part) Hash() uint64 {\n\treturn modelHash(s)\n}")
}

func TestRenderEnums(t *testing.T) {
	enums := render(t, fixture)["enums.go"]

	assert.Contains(t, enums, "// WidgetState is the state of a widget.\ntype WidgetState string")
	assert.Regexp(t, `WidgetStateInSync\s+WidgetState = "IN_SYNC"`, enums)
	assert.Regexp(t, `WidgetStateFailed\s+WidgetState = "FAILED"`, enums)
	assert.Less(t, strings.Index(enums, "WidgetStateInSync"), strings.Index(enums, "WidgetStateFailed"))
	assert.Contains(t, enums, "func (WidgetState) Values() []WidgetState {\n\treturn []WidgetState{\n\t\t\"IN_SYNC\",\n\t\t\"FAILED\",\n\t}\n}")
}

func TestRenderOperations(t *testing.T) {
	ops := render(t, fixture)["operations.go"]

	assert.Less(t, strings.Index(ops, `"CreateWidget"`), strings.Index(ops, `"ListWidgets"`))
	assert.Regexp(t, `Documentation:\s+"Creates a widget\."`, ops)
	assert.Regexp(t, `Method:\s+http\.MethodPost`, ops)
	assert.Regexp(t, `HostPrefix:\s+"data\."`, ops)
	assert.Regexp(t, `Paginated:\s+true`, ops)
	assert.Regexp(t, `Idempotent:\s+true`, ops)
	assert.Regexp(t, `newRequest:\s+func\(\) Request \{ return &CreateWidgetRequest\{\} \}`, ops)
	assert.Regexp(t, `newResult:\s+func\(\) any \{ return &ListWidgetsResult\{\} \}`, ops)
}

func TestConstSuffix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ACTIVE", "Active"},
		{"IN_SYNC", "InSync"},
		{"BAD_REQUEST_ERROR", "BadRequestError"},
		{"PNG", "Png"},
		{"ASCENDING", "Ascending"},
		{"iam", "Iam"},
		{"mixedCase", "MixedCase"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, constSuffix(tt.input))
		})
	}
}

func TestComment(t *testing.T) {
	text := strings.Repeat("word ", 30)
	lines := strings.Split(strings.TrimSuffix(comment(text, "\t"), "\n"), "\n")

	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "\t// "))
		assert.LessOrEqual(t, len(strings.TrimPrefix(line, "\t// ")), 77)
	}
	assert.Empty(t, comment("", ""))
}

func TestGoPattern(t *testing.T) {
	assert.Equal(t, `^[^\x{0000}-\x{001F}\x{007F}]+$`, goPattern(`^[^\u0000-\u001F\u007F]+$`))
	assert.Equal(t, `^[a-z][a-z0-9_]*$`, goPattern(`^[a-z][a-z0-9_]*$`))
}

func TestRejectsUnsupportedTargets(t *testing.T) {
	doc := `{
		"smithy": "2.0",
		"shapes": {
			"com.example#Service": {"type": "service"},
			"com.example#Thing": {
				"type": "structure",
				"members": {"doc": {"target": "com.example#Doc"}}
			},
			"com.example#Doc": {"type": "document"}
		}
	}`
	api, err := parser.Parse([]byte(doc))
	require.NoError(t, err)

	_, err = New("example", t.TempDir()).Render(api)
	assert.ErrorContains(t, err, "unsupported target type")
}

func TestGenerateServiceModel(t *testing.T) {
	api, err := parser.ParseSmithyJSON(filepath.Join("..", "..", "..", "api-models", "iotsitewise.json"))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, New("iotsitewise", dir).Generate(api))

	for _, name := range []string{"types.go", "enums.go", "operations.go"} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(content), header+"package iotsitewise\n"), name)
	}

	ops, err := os.ReadFile(filepath.Join(dir, "operations.go"))
	require.NoError(t, err)
	assert.Len(t, regexp.MustCompile(`(?m)^\t\tName:`).FindAll(ops, -1), 40)
	assert.Regexp(t, `Path:\s+"/20200301/gateways/\{gatewayId\}"`, string(ops))

	types, err := os.ReadFile(filepath.Join(dir, "types.go"))
	require.NoError(t, err)
	assert.Contains(t, string(types), `invalidParams.Add(newErrParamMaxValue("TimeInSeconds", 31556889864403199, *s.TimeInSeconds))`)
	assert.Contains(t, string(types), "patternID ")
	assert.NotContains(t, string(types), "Response struct")
}
