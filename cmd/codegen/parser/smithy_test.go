package parser

import (
	"reflect"
	"testing"
)

const fixture = `{
	"smithy": "2.0",
	"shapes": {
		"com.amazonaws.iotsitewise#AWSIoTSiteWise": {
			"type": "service",
			"version": "2019-12-02",
			"operations": [
				{"target": "com.amazonaws.iotsitewise#DescribeAsset"}
			]
		},
		"com.amazonaws.iotsitewise#DescribeAsset": {
			"type": "operation",
			"input": {"target": "com.amazonaws.iotsitewise#DescribeAssetRequest"},
			"output": {"target": "com.amazonaws.iotsitewise#DescribeAssetResponse"},
			"traits": {
				"smithy.api#http": {"method": "GET", "uri": "/assets/{assetId}", "code": 200},
				"smithy.api#endpoint": {"hostPrefix": "api."},
				"smithy.api#documentation": "  Retrieves information about an asset.  "
			}
		},
		"com.amazonaws.iotsitewise#DescribeAssetRequest": {
			"type": "structure",
			"members": {
				"assetId": {
					"target": "com.amazonaws.iotsitewise#ID",
					"traits": {"smithy.api#required": {}, "smithy.api#httpLabel": {}}
				},
				"nextToken": {
					"target": "smithy.api#String",
					"traits": {"smithy.api#httpQuery": "nextToken"}
				},
				"clientToken": {
					"target": "smithy.api#String",
					"traits": {"smithy.api#idempotencyToken": {}, "smithy.api#jsonName": "token"}
				}
			}
		},
		"com.amazonaws.iotsitewise#DescribeAssetResponse": {
			"type": "structure",
			"members": {}
		},
		"com.amazonaws.iotsitewise#ID": {
			"type": "string",
			"traits": {
				"smithy.api#length": {"min": 36, "max": 36},
				"smithy.api#pattern": "^[0-9a-f-]+$"
			}
		},
		"com.amazonaws.iotsitewise#Seconds": {
			"type": "long",
			"traits": {"smithy.api#range": {"min": 1, "max": 31556889864403199}}
		},
		"com.amazonaws.iotsitewise#AssetState": {
			"type": "enum",
			"members": {
				"CREATING": {"target": "smithy.api#Unit", "traits": {"smithy.api#enumValue": "CREATING"}},
				"ACTIVE": {"target": "smithy.api#Unit", "traits": {"smithy.api#enumValue": "ACTIVE"}},
				"UPDATING": {"target": "smithy.api#Unit", "traits": {"smithy.api#enumValue": "UPDATING"}},
				"DELETING": {"target": "smithy.api#Unit"}
			}
		}
	}
}`

func parseFixture(t *testing.T) *SmithyAPI {
	t.Helper()
	api, err := Parse([]byte(fixture))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return api
}

func TestGetJSONName(t *testing.T) {
	tests := []struct {
		name      string
		member    *SmithyMember
		fieldName string
		expected  string
	}{
		{
			name:      "Should preserve camelCase field name",
			member:    &SmithyMember{},
			fieldName: "assetId",
			expected:  "assetId",
		},
		{
			name:      "Should preserve mixed case field name",
			member:    &SmithyMember{},
			fieldName: "ARN",
			expected:  "ARN",
		},
		{
			name: "Should use jsonName trait when present",
			member: &SmithyMember{
				Traits: map[string]interface{}{
					TraitJSONName: "customName",
				},
			},
			fieldName: "originalName",
			expected:  "customName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.member.GetJSONName(tt.fieldName)
			if result != tt.expected {
				t.Errorf("GetJSONName(%s) = %s, want %s", tt.fieldName, result, tt.expected)
			}
		})
	}
}

func TestGetServiceShape(t *testing.T) {
	api := parseFixture(t)

	service, name, err := api.GetServiceShape()
	if err != nil {
		t.Fatalf("GetServiceShape() error = %v", err)
	}
	if name != "com.amazonaws.iotsitewise#AWSIoTSiteWise" {
		t.Errorf("service name = %s", name)
	}
	if service.Version != "2019-12-02" {
		t.Errorf("service version = %s", service.Version)
	}

	ops := api.GetOperations()
	if len(ops) != 1 {
		t.Fatalf("GetOperations() returned %d operations, want 1", len(ops))
	}
	if _, ok := ops["com.amazonaws.iotsitewise#DescribeAsset"]; !ok {
		t.Errorf("DescribeAsset not found in %v", ops)
	}
}

func TestGetServiceShapeMissing(t *testing.T) {
	api, err := Parse([]byte(`{"smithy": "2.0", "shapes": {}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, _, err := api.GetServiceShape(); err == nil {
		t.Error("GetServiceShape() expected an error")
	}
	if ops := api.GetOperations(); len(ops) != 0 {
		t.Errorf("GetOperations() = %v, want empty", ops)
	}
}

func TestOperationTraits(t *testing.T) {
	api := parseFixture(t)
	op := api.Shapes["com.amazonaws.iotsitewise#DescribeAsset"]

	binding, ok := op.HTTP()
	if !ok {
		t.Fatal("HTTP() found no http trait")
	}
	want := HTTPBinding{Method: "GET", URI: "/assets/{assetId}", Code: 200}
	if binding != want {
		t.Errorf("HTTP() = %+v, want %+v", binding, want)
	}
	if got := op.HostPrefix(); got != "api." {
		t.Errorf("HostPrefix() = %q", got)
	}
	if op.IsPaginated() {
		t.Error("IsPaginated() = true, want false")
	}
	if got := op.Documentation(); got != "Retrieves information about an asset." {
		t.Errorf("Documentation() = %q", got)
	}
}

func TestMemberTraits(t *testing.T) {
	api := parseFixture(t)
	members := api.Shapes["com.amazonaws.iotsitewise#DescribeAssetRequest"].Members

	assetID := members["assetId"]
	if !assetID.IsRequired() || !assetID.IsHTTPLabel() {
		t.Errorf("assetId: required=%v label=%v", assetID.IsRequired(), assetID.IsHTTPLabel())
	}
	if _, ok := assetID.HTTPQuery(); ok {
		t.Error("assetId should not be a query parameter")
	}

	if q, ok := members["nextToken"].HTTPQuery(); !ok || q != "nextToken" {
		t.Errorf("nextToken HTTPQuery() = %q, %v", q, ok)
	}
	if members["nextToken"].IsRequired() {
		t.Error("nextToken should be optional")
	}

	token := members["clientToken"]
	if !token.IsIdempotencyToken() {
		t.Error("clientToken should be an idempotency token")
	}
	if got := token.GetJSONName("clientToken"); got != "token" {
		t.Errorf("clientToken GetJSONName() = %q", got)
	}
}

func TestConstraintTraits(t *testing.T) {
	api := parseFixture(t)

	id := api.Shapes["com.amazonaws.iotsitewise#ID"]
	length, ok := id.Length()
	if !ok || length.Min == nil || length.Max == nil || *length.Min != 36 || *length.Max != 36 {
		t.Errorf("ID Length() = %+v, %v", length, ok)
	}
	if p, ok := id.Pattern(); !ok || p != "^[0-9a-f-]+$" {
		t.Errorf("ID Pattern() = %q, %v", p, ok)
	}
	if _, ok := id.Range(); ok {
		t.Error("ID should have no range trait")
	}

	seconds := api.Shapes["com.amazonaws.iotsitewise#Seconds"]
	rng, ok := seconds.Range()
	if !ok || rng.Max == nil {
		t.Fatalf("Seconds Range() = %+v, %v", rng, ok)
	}
	if *rng.Max != 31556889864403199 {
		t.Errorf("Seconds max = %d, want 31556889864403199", *rng.Max)
	}
}

func TestGetEnumMembers(t *testing.T) {
	api := parseFixture(t)
	state := api.Shapes["com.amazonaws.iotsitewise#AssetState"]

	if !state.IsEnum() {
		t.Fatal("AssetState should be an enum")
	}
	want := []EnumMember{
		{Name: "CREATING", Value: "CREATING"},
		{Name: "ACTIVE", Value: "ACTIVE"},
		{Name: "UPDATING", Value: "UPDATING"},
		{Name: "DELETING", Value: "DELETING"},
	}
	if got := state.GetEnumMembers(); !reflect.DeepEqual(got, want) {
		t.Errorf("GetEnumMembers() = %v, want %v", got, want)
	}
}

func TestGetShapeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"com.amazonaws.iotsitewise#AssetSummary", "AssetSummary"},
		{"smithy.api#String", "String"},
		{"Plain", "Plain"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := GetShapeName(tt.input); got != tt.expected {
				t.Errorf("GetShapeName(%s) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}
