package iotsitewise_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/sitewise/service/iotsitewise"
)

type problem struct {
	code  string
	field string
}

// problems flattens a validation error into code/field pairs.
func problems(t *testing.T, err error) []problem {
	t.Helper()
	var invalid request.ErrInvalidParams
	require.True(t, errors.As(err, &invalid), "expected request.ErrInvalidParams, got %T", err)

	var out []problem
	for _, e := range invalid.OrigErrs() {
		var p request.ErrInvalidParam
		require.True(t, errors.As(e, &p))
		out = append(out, problem{code: p.Code(), field: p.Field()})
	}
	return out
}

func metricProperty(name string, vars ...*iotsitewise.ExpressionVariable) *iotsitewise.AssetModelPropertyDefinition {
	return (&iotsitewise.AssetModelPropertyDefinition{}).
		SetName(name).
		SetDataType(iotsitewise.PropertyDataTypeDouble).
		SetType((&iotsitewise.PropertyType{}).SetMetric(
			(&iotsitewise.Metric{}).
				SetExpression("avg(speed)").
				SetVariables(vars).
				SetWindow((&iotsitewise.MetricWindow{}).SetTumbling((&iotsitewise.TumblingWindow{}).SetInterval("5m"))),
		))
}

func variable(name string) *iotsitewise.ExpressionVariable {
	return (&iotsitewise.ExpressionVariable{}).
		SetName(name).
		SetValue((&iotsitewise.VariableValue{}).SetPropertyId(propertyID))
}

func TestValidateRequired(t *testing.T) {
	err := (&iotsitewise.CreateAssetRequest{}).Validate()
	require.Error(t, err)

	assert.ElementsMatch(t, []problem{
		{request.ParamRequiredErrCode, "CreateAssetRequest.AssetModelId"},
		{request.ParamRequiredErrCode, "CreateAssetRequest.AssetName"},
	}, problems(t, err))
	assert.Contains(t, err.Error(), "2 validation error(s) found.")
}

func TestValidateValidRequest(t *testing.T) {
	req := (&iotsitewise.CreateAssetRequest{}).
		SetAssetName("Turbine 1").
		SetAssetModelId(assetModelID).
		SetTags(map[string]string{"site": "north"})

	assert.NoError(t, req.Validate())
}

func TestValidateConstraints(t *testing.T) {
	tests := []struct {
		name  string
		req   iotsitewise.Request
		code  string
		field string
	}{
		{
			name:  "id too short",
			req:   (&iotsitewise.DescribeAssetRequest{}).SetAssetId("abc"),
			code:  request.ParamMinLenErrCode,
			field: "DescribeAssetRequest.AssetId",
		},
		{
			name:  "id not a uuid",
			req:   (&iotsitewise.DescribeAssetRequest{}).SetAssetId(strings.Repeat("z", 36)),
			code:  request.ParamFormatErrCode,
			field: "DescribeAssetRequest.AssetId",
		},
		{
			name:  "name too long",
			req:   (&iotsitewise.CreateAssetRequest{}).SetAssetModelId(assetModelID).SetAssetName(strings.Repeat("n", 257)),
			code:  request.ParamMaxLenErrCode,
			field: "CreateAssetRequest.AssetName",
		},
		{
			name:  "name with control character",
			req:   (&iotsitewise.CreateAssetRequest{}).SetAssetModelId(assetModelID).SetAssetName("bad\u0007name"),
			code:  request.ParamFormatErrCode,
			field: "CreateAssetRequest.AssetName",
		},
		{
			name:  "empty name",
			req:   (&iotsitewise.CreateAssetRequest{}).SetAssetModelId(assetModelID).SetAssetName(""),
			code:  request.ParamMinLenErrCode,
			field: "CreateAssetRequest.AssetName",
		},
		{
			name:  "client token too short",
			req:   (&iotsitewise.CreateAssetRequest{}).SetAssetModelId(assetModelID).SetAssetName("a").SetClientToken("short"),
			code:  request.ParamMinLenErrCode,
			field: "CreateAssetRequest.ClientToken",
		},
		{
			name:  "max results below one",
			req:   (&iotsitewise.ListAssetsRequest{}).SetMaxResults(0),
			code:  request.ParamMinValueErrCode,
			field: "ListAssetsRequest.MaxResults",
		},
		{
			name:  "next token format",
			req:   (&iotsitewise.ListAssetsRequest{}).SetNextToken("not a token!"),
			code:  request.ParamFormatErrCode,
			field: "ListAssetsRequest.NextToken",
		},
		{
			name:  "portal contact email",
			req:   (&iotsitewise.CreatePortalRequest{}).SetPortalName("p").SetRoleArn("arn:aws:iam::123456789012:role/p").SetPortalContactEmail("nobody"),
			code:  request.ParamFormatErrCode,
			field: "CreatePortalRequest.PortalContactEmail",
		},
		{
			name:  "portal logo without data",
			req:   (&iotsitewise.CreatePortalRequest{}).SetPortalName("p").SetRoleArn("r").SetPortalContactEmail("a@b").SetPortalLogoImageFile((&iotsitewise.ImageFile{}).SetType(iotsitewise.ImageFileTypePng)),
			code:  request.ParamRequiredErrCode,
			field: "CreatePortalRequest.PortalLogoImageFile.Data",
		},
		{
			name:  "portal logo with empty data",
			req:   (&iotsitewise.CreatePortalRequest{}).SetPortalName("p").SetRoleArn("r").SetPortalContactEmail("a@b").SetPortalLogoImageFile((&iotsitewise.ImageFile{}).SetType(iotsitewise.ImageFileTypePng).SetData([]byte{})),
			code:  request.ParamMinLenErrCode,
			field: "CreatePortalRequest.PortalLogoImageFile.Data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.Contains(t, problems(t, err), problem{code: tt.code, field: tt.field})
		})
	}
}

func TestValidateCountsRunes(t *testing.T) {
	name := strings.Repeat("é", 256)
	require.Greater(t, len(name), 256)

	req := (&iotsitewise.CreateAssetRequest{}).SetAssetModelId(assetModelID).SetAssetName(name)
	assert.NoError(t, req.Validate())
}

func TestValidateNestedPaths(t *testing.T) {
	prop := metricProperty("Average speed", variable("speed"))
	prop.Type.Metric.SetExpression("AVG(Speed)")
	prop.Type.Metric.Variables[0].Value.SetPropertyId("not-a-uuid")
	prop.Type.Metric.Window.Tumbling.SetInterval("2m")

	req := (&iotsitewise.CreateAssetModelRequest{}).
		SetAssetModelName("Turbine model").
		SetAssetModelProperties([]*iotsitewise.AssetModelPropertyDefinition{
			metricProperty("Speed", variable("speed")),
			prop,
		}).
		SetAssetModelHierarchies([]*iotsitewise.AssetModelHierarchyDefinition{
			(&iotsitewise.AssetModelHierarchyDefinition{}).SetName("Blades"),
		})

	got := problems(t, req.Validate())
	assert.Contains(t, got, problem{request.ParamFormatErrCode, "CreateAssetModelRequest.AssetModelProperties[1].Type.Metric.Expression"})
	assert.Contains(t, got, problem{request.ParamMinLenErrCode, "CreateAssetModelRequest.AssetModelProperties[1].Type.Metric.Variables[0].Value.PropertyId"})
	assert.Contains(t, got, problem{request.ParamFormatErrCode, "CreateAssetModelRequest.AssetModelProperties[1].Type.Metric.Window.Tumbling.Interval"})
	assert.Contains(t, got, problem{request.ParamRequiredErrCode, "CreateAssetModelRequest.AssetModelHierarchies[0].ChildAssetModelId"})
	for _, p := range got {
		assert.NotContains(t, p.field, "AssetModelProperties[0]")
	}
}

func TestValidateMissingMetricParts(t *testing.T) {
	req := (&iotsitewise.CreateAssetModelRequest{}).
		SetAssetModelName("Turbine model").
		SetAssetModelProperties([]*iotsitewise.AssetModelPropertyDefinition{
			(&iotsitewise.AssetModelPropertyDefinition{}).
				SetName("Speed").
				SetType((&iotsitewise.PropertyType{}).SetMetric(&iotsitewise.Metric{})),
		})

	got := problems(t, req.Validate())
	assert.ElementsMatch(t, []problem{
		{request.ParamRequiredErrCode, "CreateAssetModelRequest.AssetModelProperties[0].DataType"},
		{request.ParamRequiredErrCode, "CreateAssetModelRequest.AssetModelProperties[0].Type.Metric.Expression"},
		{request.ParamRequiredErrCode, "CreateAssetModelRequest.AssetModelProperties[0].Type.Metric.Variables"},
		{request.ParamRequiredErrCode, "CreateAssetModelRequest.AssetModelProperties[0].Type.Metric.Window"},
	}, got)
}

func TestValidateDoesNotLimitVariableCount(t *testing.T) {
	vars := make([]*iotsitewise.ExpressionVariable, 11)
	for i := range vars {
		vars[i] = variable("v" + string(rune('a'+i)))
	}
	req := (&iotsitewise.CreateAssetModelRequest{}).
		SetAssetModelName("Turbine model").
		SetAssetModelProperties([]*iotsitewise.AssetModelPropertyDefinition{metricProperty("Total", vars...)})

	assert.NoError(t, req.Validate())
}

func TestValidateVariableName(t *testing.T) {
	for _, name := range []string{"Speed", "1speed", "speed-rpm"} {
		err := variable(name).Validate()
		require.Error(t, err, name)
		assert.Contains(t, problems(t, err), problem{request.ParamFormatErrCode, "ExpressionVariable.Name"}, name)
	}
	assert.NoError(t, variable("speed_rpm2").Validate())
}

func TestValidateMaxValue(t *testing.T) {
	tin := &iotsitewise.TimeInNanos{
		TimeInSeconds: aws.Int64(31556889864403200),
		OffsetInNanos: aws.Int32(1_000_000_000),
	}

	err := tin.Validate()
	require.Error(t, err)

	var invalid request.ErrInvalidParams
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, 2, invalid.Len())

	var maxErr *iotsitewise.ErrParamMaxValue
	require.True(t, errors.As(invalid.OrigErrs()[1], &maxErr))
	assert.Equal(t, iotsitewise.ParamMaxValueErrCode, maxErr.Code())
	assert.Equal(t, "TimeInNanos.TimeInSeconds", maxErr.Field())
	assert.Equal(t, int64(31556889864403199), maxErr.MaxValue())
	assert.Equal(t, int64(31556889864403200), maxErr.Value())
	assert.Nil(t, maxErr.OrigErr())
	assert.Contains(t, maxErr.Error(), "maximum field value of 31556889864403199")

	assert.NoError(t, (&iotsitewise.TimeInNanos{TimeInSeconds: aws.Int64(31556889864403199)}).Validate())
}

func TestValidateMaxValueNested(t *testing.T) {
	req := (&iotsitewise.BatchPutAssetPropertyValueRequest{}).SetEntries([]*iotsitewise.PutAssetPropertyValueEntry{
		(&iotsitewise.PutAssetPropertyValueEntry{}).
			SetEntryId("e1").
			SetPropertyAlias("/turbine/1/speed").
			SetPropertyValues([]*iotsitewise.AssetPropertyValue{
				(&iotsitewise.AssetPropertyValue{}).
					SetTimestamp((&iotsitewise.TimeInNanos{}).SetTimeInSeconds(1).SetOffsetInNanos(-1)).
					SetValue((&iotsitewise.Variant{}).SetDoubleValue(42.5)),
			}),
	})

	got := problems(t, req.Validate())
	assert.Equal(t, []problem{
		{request.ParamMinValueErrCode, "BatchPutAssetPropertyValueRequest.Entries[0].PropertyValues[0].Timestamp.OffsetInNanos"},
	}, got)
}

func TestValidateEmptyLists(t *testing.T) {
	got := problems(t, (&iotsitewise.BatchPutAssetPropertyValueRequest{}).SetEntries([]*iotsitewise.PutAssetPropertyValueEntry{}).Validate())
	assert.Equal(t, []problem{{request.ParamMinLenErrCode, "BatchPutAssetPropertyValueRequest.Entries"}}, got)
}

func TestValidateNilValues(t *testing.T) {
	var nilReq *iotsitewise.CreateAssetRequest
	var req iotsitewise.Request = nilReq

	assert.NotPanics(t, func() { assert.NoError(t, req.Validate()) })
	assert.NoError(t, (*iotsitewise.TimeInNanos)(nil).Validate())

	for _, op := range iotsitewise.Operations() {
		typed := reflect.Zero(reflect.TypeOf(op.NewRequest())).Interface().(iotsitewise.Request)
		assert.NotPanics(t, func() { _ = typed.Validate() }, op.Name)
	}
}
