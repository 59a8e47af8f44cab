package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/sitewise/service/iotsitewise"
)

func TestBuildEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		hostPrefix string
		want       string
	}{
		{
			name:       "default region",
			hostPrefix: "api.",
			want:       "https://api.iotsitewise.us-east-1.amazonaws.com",
		},
		{
			name:       "monitor plane",
			config:     Config{Region: "eu-west-1"},
			hostPrefix: "monitor.",
			want:       "https://monitor.iotsitewise.eu-west-1.amazonaws.com",
		},
		{
			name:       "china partition",
			config:     Config{Region: "cn-north-1"},
			hostPrefix: "data.",
			want:       "https://data.iotsitewise.cn-north-1.amazonaws.com.cn",
		},
		{
			name:       "custom endpoint with trailing slash",
			config:     Config{Endpoint: "http://localhost:4566/"},
			hostPrefix: "api.",
			want:       "http://localhost:4566",
		},
		{
			name:       "custom endpoint without scheme",
			config:     Config{Endpoint: "sitewise.internal:8443"},
			hostPrefix: "data.",
			want:       "https://sitewise.internal:8443",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.config)
			assert.Equal(t, tt.want, r.BuildEndpoint(tt.hostPrefix))
		})
	}
}

func TestResolveURL(t *testing.T) {
	r := NewResolver(Config{Region: "us-west-2"})

	op, err := iotsitewise.LookupOperation("UpdateAssetProperty")
	require.NoError(t, err)

	got, err := r.ResolveURL(op, map[string]string{
		"assetId":    "a1b2c3d4-0000-0000-0000-000000000001",
		"propertyId": "a1b2c3d4-0000-0000-0000-000000000002",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"https://api.iotsitewise.us-west-2.amazonaws.com/assets/a1b2c3d4-0000-0000-0000-000000000001/properties/a1b2c3d4-0000-0000-0000-000000000002",
		got)

	_, err = r.ResolveURL(op, map[string]string{"assetId": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "propertyId")
}

func TestResolveURL_EscapesLabels(t *testing.T) {
	r := NewResolver(Config{})
	op, err := iotsitewise.LookupOperation("DescribeDashboard")
	require.NoError(t, err)

	got, err := r.ResolveURL(op, map[string]string{"dashboardId": "a/b c"})
	require.NoError(t, err)
	assert.Equal(t, "https://monitor.iotsitewise.us-east-1.amazonaws.com/dashboards/a%2Fb%20c", got)
}

func TestPathLabels(t *testing.T) {
	assert.Equal(t, []string{"assetId", "propertyId"}, PathLabels("/assets/{assetId}/properties/{propertyId}"))
	assert.Nil(t, PathLabels("/properties/latest"))
}

func TestEveryOperationHasEndpoint(t *testing.T) {
	r := NewResolver(Config{Region: "ap-southeast-2"})
	for _, op := range iotsitewise.Operations() {
		assert.Contains(t, []string{"api.", "monitor.", "data."}, op.HostPrefix, op.Name)
		assert.Regexp(t, `^https://(api|monitor|data)\.iotsitewise\.ap-southeast-2\.amazonaws\.com$`, r.Endpoint(op), op.Name)
	}
}
