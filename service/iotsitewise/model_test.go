package iotsitewise_test

import (
	"math"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/sitewise/service/iotsitewise"
)

const (
	assetID      = "a1b2c3d4-5678-90ab-cdef-111111111111"
	assetModelID = "a1b2c3d4-5678-90ab-cdef-222222222222"
	hierarchyID  = "a1b2c3d4-5678-90ab-cdef-333333333333"
	propertyID   = "a1b2c3d4-5678-90ab-cdef-444444444444"
)

func TestSettersReturnReceiver(t *testing.T) {
	req := &iotsitewise.CreateAssetRequest{}
	got := req.SetAssetName("Turbine 1").SetAssetModelId(assetModelID).SetTags(map[string]string{"site": "north"})

	assert.Same(t, req, got)
	assert.Equal(t, "Turbine 1", req.GetAssetName())
	assert.Equal(t, assetModelID, req.GetAssetModelId())
	assert.Equal(t, map[string]string{"site": "north"}, req.GetTags())
}

func TestGettersOnUnsetFields(t *testing.T) {
	var nilReq *iotsitewise.ListAssetsRequest
	assert.Equal(t, int32(0), nilReq.GetMaxResults())
	assert.Equal(t, "", nilReq.GetNextToken())
	assert.Equal(t, iotsitewise.ListAssetsFilter(""), nilReq.GetFilter())

	res := &iotsitewise.DescribeAssetResult{}
	assert.True(t, res.GetAssetCreationDate().IsZero())
	assert.Nil(t, res.GetAssetHierarchies())
	assert.Nil(t, res.GetAssetStatus())
	assert.Equal(t, iotsitewise.AssetState(""), res.GetAssetStatus().GetState())

	var variant *iotsitewise.Variant
	assert.False(t, variant.GetBooleanValue())
	assert.Zero(t, variant.GetDoubleValue())
}

func TestTimestampAccessors(t *testing.T) {
	created := time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC)
	res := (&iotsitewise.DescribeAssetResult{}).SetAssetCreationDate(created)

	require.NotNil(t, res.AssetCreationDate)
	assert.True(t, res.GetAssetCreationDate().Equal(created))
}

func TestEqual(t *testing.T) {
	build := func() *iotsitewise.DescribeAssetResult {
		return (&iotsitewise.DescribeAssetResult{}).
			SetAssetId(assetID).
			SetAssetName("Turbine").
			SetAssetCreationDate(time.Unix(1583064000, 0)).
			SetAssetHierarchies([]*iotsitewise.AssetHierarchy{
				(&iotsitewise.AssetHierarchy{}).SetId(hierarchyID).SetName("Blades"),
			}).
			SetAssetStatus((&iotsitewise.AssetStatus{}).SetState(iotsitewise.AssetStateActive))
	}

	a, b := build(), build()
	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	b.AssetCreationDate.Time = b.AssetCreationDate.In(time.FixedZone("JST", 9*60*60))
	assert.True(t, a.Equal(b), "the same instant in another zone is equal")

	b.AssetHierarchies[0].SetName("Rotor")
	assert.False(t, a.Equal(b))

	var nilRes *iotsitewise.DescribeAssetResult
	assert.True(t, nilRes.Equal(nil))
	assert.False(t, a.Equal(nil))
	assert.False(t, nilRes.Equal(a))
}

func TestEqualDistinguishesUnsetFromZero(t *testing.T) {
	unset := &iotsitewise.ListAssetsRequest{}
	zero := (&iotsitewise.ListAssetsRequest{}).SetNextToken("")

	assert.False(t, unset.Equal(zero))
	assert.True(t, (&iotsitewise.ListAssetsRequest{}).Equal(unset))
}

func TestHash(t *testing.T) {
	a := (&iotsitewise.CreateAssetRequest{}).
		SetAssetName("Turbine").
		SetTags(map[string]string{"a": "1", "b": "2", "c": "3"})
	b := (&iotsitewise.CreateAssetRequest{}).
		SetTags(map[string]string{"c": "3", "b": "2", "a": "1"}).
		SetAssetName("Turbine")

	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotZero(t, a.Hash())

	b.SetAssetName("Turbine 2")
	assert.NotEqual(t, a.Hash(), b.Hash())

	var nilReq *iotsitewise.CreateAssetRequest
	assert.Zero(t, nilReq.Hash())
}

func TestHashOfEqualTimes(t *testing.T) {
	instant := time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC)
	a := (&iotsitewise.AssetSummary{}).SetCreationDate(instant)
	b := (&iotsitewise.AssetSummary{}).SetCreationDate(instant.In(time.FixedZone("PST", -8*60*60)))

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestEqualWithNonFiniteDoubles(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		v := (&iotsitewise.Variant{}).SetDoubleValue(f)
		assert.True(t, v.Equal(v), "%v", f)
		assert.True(t, v.Equal((&iotsitewise.Variant{}).SetDoubleValue(f)), "%v", f)

		value := (&iotsitewise.AssetPropertyValue{}).
			SetTimestamp((&iotsitewise.TimeInNanos{}).SetTimeInSeconds(1)).
			SetValue(v)
		assert.True(t, value.Equal(value), "%v", f)
	}

	nan := (&iotsitewise.Variant{}).SetDoubleValue(math.NaN())
	assert.False(t, nan.Equal((&iotsitewise.Variant{}).SetDoubleValue(1)))
}

func TestHashWithNonFiniteDoubles(t *testing.T) {
	hashes := map[uint64]float64{}
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		v := (&iotsitewise.Variant{}).SetDoubleValue(f)
		h := v.Hash()

		assert.NotZero(t, h, "%v", f)
		assert.Equal(t, h, v.Hash(), "%v", f)
		assert.Equal(t, h, (&iotsitewise.Variant{}).SetDoubleValue(f).Hash(), "%v", f)
		hashes[h] = f
	}
	assert.Len(t, hashes, 3)

	instant := time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC)
	build := func(at time.Time) *iotsitewise.AssetPropertyValue {
		return (&iotsitewise.AssetPropertyValue{}).
			SetTimestamp(iotsitewise.NewTimeInNanos(at)).
			SetQuality(iotsitewise.QualityGood).
			SetValue((&iotsitewise.Variant{}).SetDoubleValue(math.NaN()))
	}
	a, b := build(instant), build(instant)
	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), build(instant.Add(time.Second)).Hash())
}

func TestString(t *testing.T) {
	req := (&iotsitewise.CreateAssetRequest{}).SetAssetName("Turbine").SetAssetModelId(assetModelID)

	s := req.String()
	assert.Contains(t, s, `AssetName: "Turbine"`)
	assert.Contains(t, s, `AssetModelId: "`+assetModelID+`"`)
	assert.NotContains(t, s, "ClientToken")
	assert.Equal(t, s, req.GoString())
}

func TestJSONEncoding(t *testing.T) {
	req := (&iotsitewise.CreateAssetRequest{}).SetAssetName("Turbine").SetAssetModelId(assetModelID)

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"assetModelId": "`+assetModelID+`", "assetName": "Turbine"}`, string(data))
}

func TestDecodeResult(t *testing.T) {
	payload := `{
		"assetId": "` + assetID + `",
		"assetArn": "arn:aws:iotsitewise:us-east-1:123456789012:asset/` + assetID + `",
		"assetName": "Turbine",
		"assetModelId": "` + assetModelID + `",
		"assetCreationDate": 1583064000.25,
		"assetLastUpdateDate": null,
		"assetHierarchies": [{"id": "` + hierarchyID + `", "name": "Blades"}],
		"assetProperties": [{"id": "` + propertyID + `", "name": "Speed", "dataType": "DOUBLE", "notification": {"topic": "t", "state": "ENABLED"}}],
		"assetStatus": {"state": "FAILED", "error": {"code": "VALIDATION_ERROR", "message": "bad"}}
	}`

	res := &iotsitewise.DescribeAssetResult{}
	require.NoError(t, json.Unmarshal([]byte(payload), res))

	assert.Equal(t, assetID, res.GetAssetId())
	assert.True(t, res.GetAssetCreationDate().Equal(time.UnixMilli(1583064000250)))
	assert.True(t, res.GetAssetLastUpdateDate().IsZero())
	assert.Equal(t, "Blades", res.GetAssetHierarchies()[0].GetName())
	assert.Equal(t, iotsitewise.PropertyDataTypeDouble, res.GetAssetProperties()[0].GetDataType())
	assert.Equal(t, iotsitewise.PropertyNotificationStateEnabled, res.GetAssetProperties()[0].GetNotification().GetState())
	assert.Equal(t, iotsitewise.AssetStateFailed, res.GetAssetStatus().GetState())
	assert.Equal(t, iotsitewise.ErrorCodeValidationError, res.GetAssetStatus().GetError().GetCode())

	data, err := json.Marshal(res)
	require.NoError(t, err)
	again := &iotsitewise.DescribeAssetResult{}
	require.NoError(t, json.Unmarshal(data, again))
	assert.True(t, res.Equal(again))
}

func TestEnumValues(t *testing.T) {
	assert.Equal(t, []iotsitewise.AssetState{"CREATING", "ACTIVE", "UPDATING", "DELETING", "FAILED"}, iotsitewise.AssetState("").Values())
	assert.Contains(t, iotsitewise.Quality("").Values(), iotsitewise.QualityUncertain)
	assert.Contains(t, iotsitewise.ImageFileType("").Values(), iotsitewise.ImageFileTypePng)
	assert.Len(t, iotsitewise.TraversalDirection("").Values(), 2)
}
