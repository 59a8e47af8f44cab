package cli

import (
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/sitewise/service/iotsitewise"
)

func TestResolveRequest(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		url       string
		operation string
	}{
		{"create asset", "POST", "/assets", "CreateAsset"},
		{"list assets", "GET", "/assets", "ListAssets"},
		{"describe asset", "GET", "/assets/abc", "DescribeAsset"},
		{"delete asset", "DELETE", "/assets/abc", "DeleteAsset"},
		{"gateway with date prefix", "GET", "/20200301/gateways/gw", "DescribeGateway"},
		{"batch put on data host", "POST", "https://data.iotsitewise.eu-west-1.amazonaws.com/properties", "BatchPutAssetPropertyValue"},
		{"custom endpoint host", "GET", "http://localhost:4566/properties/history", "GetAssetPropertyValueHistory"},
		{"monitor host", "GET", "https://monitor.iotsitewise.us-east-1.amazonaws.com/portals", "ListPortals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := resolveRequest(tt.method, tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.operation, res.Operation)
		})
	}
}

func TestResolveRequestErrors(t *testing.T) {
	_, err := resolveRequest("GET", "/widgets")
	assert.ErrorIs(t, err, iotsitewise.ErrUnknownOperation)

	_, err = resolveRequest("GET", "https://data.iotsitewise.us-east-1.amazonaws.com/portals")
	assert.ErrorIs(t, err, iotsitewise.ErrUnknownOperation)

	_, err = resolveRequest("GET", "/assets?maxResults=ten")
	assert.ErrorContains(t, err, "maxResults: invalid integer")

	_, err = resolveRequest("GET", "/properties/history?startDate=soon")
	assert.ErrorContains(t, err, "startDate: invalid timestamp")
}

func TestBindLocations(t *testing.T) {
	req := &iotsitewise.GetAssetPropertyValueHistoryRequest{}
	query := url.Values{
		"assetId":       {"a1b2c3d4-5678-90ab-cdef-111111111111"},
		"startDate":     {"1583064000.5"},
		"endDate":       {"2020-03-02T00:00:00Z"},
		"qualities":     {"GOOD", "BAD"},
		"timeOrdering":  {"DESCENDING"},
		"maxResults":    {"100"},
		"propertyAlias": {"/plant/turbine/speed"},
	}
	require.NoError(t, bindLocations(req, nil, query))

	assert.Equal(t, "a1b2c3d4-5678-90ab-cdef-111111111111", req.GetAssetId())
	assert.True(t, req.GetStartDate().Equal(time.UnixMilli(1583064000500)))
	assert.True(t, req.GetEndDate().Equal(time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, []iotsitewise.Quality{iotsitewise.QualityGood, iotsitewise.QualityBad}, req.GetQualities())
	assert.Equal(t, iotsitewise.TimeOrderingDescending, req.GetTimeOrdering())
	assert.Equal(t, int32(100), req.GetMaxResults())
	assert.Equal(t, "/plant/turbine/speed", req.GetPropertyAlias())
	assert.NoError(t, req.Validate())
}

func TestBindLocationsLabels(t *testing.T) {
	req := &iotsitewise.DeleteAssetRequest{}
	labels := map[string]string{"assetId": "a1b2c3d4-5678-90ab-cdef-111111111111"}
	query := url.Values{"clientToken": {"9f1c6a4e-2b1d-4c6a-8a1b-6f3b2c1d0e9f"}, "ignored": {"x"}}
	require.NoError(t, bindLocations(req, labels, query))

	want := (&iotsitewise.DeleteAssetRequest{}).
		SetAssetId("a1b2c3d4-5678-90ab-cdef-111111111111").
		SetClientToken("9f1c6a4e-2b1d-4c6a-8a1b-6f3b2c1d0e9f")
	assert.True(t, want.Equal(req), "got %s", req)
}

func TestSkeletonOf(t *testing.T) {
	skeleton := skeletonOf(reflect.TypeOf(&iotsitewise.PutAssetPropertyValueEntry{}), false).(map[string]any)

	assert.Equal(t, "", skeleton["entryId"])
	values := skeleton["propertyValues"].([]any)
	require.Len(t, values, 1)
	value := values[0].(map[string]any)
	assert.Equal(t, "GOOD", value["quality"])
	assert.Equal(t, map[string]any{"offsetInNanos": 0, "timeInSeconds": 0}, value["timestamp"])
	assert.Equal(t, map[string]any{"booleanValue": false, "doubleValue": 0, "integerValue": 0, "stringValue": ""}, value["value"])

	required := skeletonOf(reflect.TypeOf(&iotsitewise.PutAssetPropertyValueEntry{}), true).(map[string]any)
	assert.ElementsMatch(t, []string{"entryId", "propertyValues"}, keys(required))
}

func TestSkeletonOfScalars(t *testing.T) {
	assert.Equal(t, 0, skeletonOf(reflect.TypeOf(&iotsitewise.AssetSummary{}), false).(map[string]any)["creationDate"])
	assert.Equal(t, map[string]any{"": ""}, skeletonOf(reflect.TypeOf(map[string]string{}), false))
	assert.Equal(t, "", skeletonOf(reflect.TypeOf([]byte{}), false))
	assert.Equal(t, "CREATING", skeletonOf(reflect.TypeOf(iotsitewise.AssetState("")), false))
	assert.Empty(t, enumValues(reflect.TypeOf("")))
}

func TestDecodePayload(t *testing.T) {
	req := &iotsitewise.TagResourceRequest{}
	require.NoError(t, decodePayload([]byte("resourceArn: arn:aws:iotsitewise:us-east-1:123456789012:asset/a\ntags:\n  site: north\n"), req))
	assert.Equal(t, "arn:aws:iotsitewise:us-east-1:123456789012:asset/a", req.GetResourceArn())
	assert.Equal(t, map[string]string{"site": "north"}, req.GetTags())

	empty := &iotsitewise.TagResourceRequest{}
	require.NoError(t, decodePayload([]byte(""), empty))
	assert.Nil(t, empty.ResourceArn)

	assert.ErrorContains(t, decodePayload([]byte("tags: [unclosed"), req), "failed to parse payload")
	assert.ErrorContains(t, decodePayload([]byte(`{"resourceArn": 5}`), req), "failed to decode payload")
}

func TestReadPayload(t *testing.T) {
	data, err := readPayload(strings.NewReader("{}"), "-")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	_, err = readPayload(strings.NewReader(""), "/nonexistent/request.json")
	assert.ErrorContains(t, err, "failed to read payload")
}

func TestProblemsOf(t *testing.T) {
	req := &iotsitewise.ListAssetsRequest{MaxResults: aws.Int32(0), NextToken: aws.String("***")}
	err := req.Validate()
	require.Error(t, err)

	problems := problemsOf(err)
	require.Len(t, problems, 2)
	assert.Equal(t, "ListAssetsRequest.MaxResults", problems[0].Field)
	assert.Equal(t, request.ParamMinValueErrCode, problems[0].Code)
	assert.Equal(t, "ListAssetsRequest.NextToken", problems[1].Field)
	assert.Equal(t, request.ParamFormatErrCode, problems[1].Code)

	other := problemsOf(assert.AnError)
	assert.Equal(t, []problem{{Code: "Error", Message: assert.AnError.Error()}}, other)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
