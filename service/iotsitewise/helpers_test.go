package iotsitewise_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/sitewise/service/iotsitewise"
)

func TestEnsureClientToken(t *testing.T) {
	t.Run("fills a missing token", func(t *testing.T) {
		req := (&iotsitewise.CreateAssetRequest{}).SetAssetName("Turbine").SetAssetModelId(assetModelID)

		token := iotsitewise.EnsureClientToken(req)
		_, err := uuid.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, token, req.GetClientToken())
		assert.NoError(t, req.Validate())
	})

	t.Run("keeps an existing token", func(t *testing.T) {
		existing := "11111111-2222-3333-4444-555555555555"
		req := (&iotsitewise.DeleteAssetRequest{}).SetAssetId(assetID).SetClientToken(existing)

		assert.Equal(t, existing, iotsitewise.EnsureClientToken(req))
		assert.Equal(t, existing, req.GetClientToken())
	})

	t.Run("replaces an empty token", func(t *testing.T) {
		req := (&iotsitewise.CreatePortalRequest{}).SetClientToken("")
		assert.NotEmpty(t, iotsitewise.EnsureClientToken(req))
	})

	t.Run("requests without a token", func(t *testing.T) {
		assert.Equal(t, "", iotsitewise.EnsureClientToken(&iotsitewise.DescribeAssetRequest{}))
		assert.Equal(t, "", iotsitewise.EnsureClientToken(nil))

		var nilReq *iotsitewise.CreateAssetRequest
		assert.Equal(t, "", iotsitewise.EnsureClientToken(nilReq))
	})
}

func TestEnsureClientTokenMatchesIdempotency(t *testing.T) {
	for _, op := range iotsitewise.Operations() {
		token := iotsitewise.EnsureClientToken(op.NewRequest())
		assert.Equal(t, op.Idempotent, token != "", op.Name)
	}
}

func TestHasMorePages(t *testing.T) {
	assert.True(t, iotsitewise.HasMorePages((&iotsitewise.ListAssetsResult{}).SetNextToken("abc")))
	assert.False(t, iotsitewise.HasMorePages(&iotsitewise.ListAssetsResult{}))
	assert.False(t, iotsitewise.HasMorePages((&iotsitewise.ListGatewaysResult{}).SetNextToken("")))
	assert.False(t, iotsitewise.HasMorePages(&iotsitewise.DescribeAssetResult{}))
	assert.False(t, iotsitewise.HasMorePages(nil))

	var nilRes *iotsitewise.ListPortalsResult
	assert.False(t, iotsitewise.HasMorePages(nilRes))
}

func TestTimeInNanos(t *testing.T) {
	instant := time.Date(2020, 3, 1, 12, 30, 15, 250_000_123, time.UTC)

	tin := iotsitewise.NewTimeInNanos(instant)
	assert.Equal(t, instant.Unix(), tin.GetTimeInSeconds())
	assert.Equal(t, int32(250_000_123), tin.GetOffsetInNanos())
	assert.True(t, tin.Time().Equal(instant))
	assert.Equal(t, time.UTC, tin.Time().Location())
	assert.NoError(t, tin.Validate())

	var nilTime *iotsitewise.TimeInNanos
	assert.True(t, nilTime.Time().IsZero())
	assert.Equal(t, time.Unix(7, 0).UTC(), (&iotsitewise.TimeInNanos{}).SetTimeInSeconds(7).Time())
}

func TestBuildARN(t *testing.T) {
	tests := []struct {
		typ      iotsitewise.ResourceType
		region   string
		expected string
	}{
		{iotsitewise.ResourceTypeAsset, "us-east-1", "arn:aws:iotsitewise:us-east-1:123456789012:asset/" + assetID},
		{iotsitewise.ResourceTypeAssetModel, "cn-north-1", "arn:aws-cn:iotsitewise:cn-north-1:123456789012:asset-model/" + assetID},
		{iotsitewise.ResourceTypePortal, "us-gov-west-1", "arn:aws-us-gov:iotsitewise:us-gov-west-1:123456789012:portal/" + assetID},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, iotsitewise.BuildARN(tt.typ, tt.region, "123456789012", assetID))
		})
	}
}

func TestParseResourceARN(t *testing.T) {
	parsed, err := iotsitewise.ParseResourceARN("arn:aws:iotsitewise:eu-west-1:123456789012:gateway/" + assetID)
	require.NoError(t, err)
	assert.Equal(t, iotsitewise.ResourceTypeGateway, parsed.Type)
	assert.Equal(t, assetID, parsed.ID)
	assert.Equal(t, "eu-west-1", parsed.Region)
	assert.Equal(t, "123456789012", parsed.AccountID)
	assert.Equal(t, "aws", parsed.Partition)

	for _, bad := range []string{
		"not-an-arn",
		"arn:aws:iot:eu-west-1:123456789012:thing/x",
		"arn:aws:iotsitewise:eu-west-1:123456789012:asset",
		"arn:aws:iotsitewise:eu-west-1:123456789012:asset/",
		"arn:aws:iotsitewise:eu-west-1:123456789012:widget/" + assetID,
	} {
		_, err := iotsitewise.ParseResourceARN(bad)
		assert.True(t, errors.Is(err, iotsitewise.ErrInvalidARN), bad)
	}
}

func TestResourceTypeRoundTrip(t *testing.T) {
	for _, typ := range iotsitewise.ResourceType("").Values() {
		parsed, err := iotsitewise.ParseResourceARN(iotsitewise.BuildARN(typ, "ap-northeast-1", "123456789012", assetID))
		require.NoError(t, err)
		assert.Equal(t, typ, parsed.Type)
	}
}
