package cli_test

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/sitewise/internal/cli"
	"github.com/nandemo-ya/sitewise/service/iotsitewise"
)

const (
	assetID      = "a1b2c3d4-5678-90ab-cdef-111111111111"
	assetModelID = "a1b2c3d4-5678-90ab-cdef-222222222222"
)

func decodeJSON(s string, v any) {
	ExpectWithOffset(1, json.Unmarshal([]byte(s), v)).To(Succeed())
}

var _ = Describe("operations", func() {
	It("should list every operation as a table", func() {
		res := run("", "operations")
		Expect(res.err).NotTo(HaveOccurred())
		Expect(res.stdout).To(ContainSubstring("NAME"))
		Expect(res.stdout).To(ContainSubstring("CreateAsset"))
		Expect(res.stdout).To(ContainSubstring("/20200301/gateways/{gatewayId}"))
	})

	It("should list every operation as JSON", func() {
		res := run("", "operations", "-o", "json")
		Expect(res.err).NotTo(HaveOccurred())

		var views []map[string]any
		decodeJSON(res.stdout, &views)
		Expect(views).To(HaveLen(40))
		Expect(views[0]["name"]).To(Equal("AssociateAssets"))
	})

	DescribeTable("filters",
		func(count int, args ...string) {
			res := run("", append([]string{"ops", "-o", "json"}, args...)...)
			Expect(res.err).NotTo(HaveOccurred())

			var views []map[string]any
			decodeJSON(res.stdout, &views)
			Expect(views).To(HaveLen(count))
		},
		Entry("by group", 5, "--group", "portals"),
		Entry("by gateway group behind a date prefix", 5, "--group", "gateways"),
		Entry("by data host", 3, "--host", "data"),
		Entry("by monitor host with a trailing dot", 15, "--host", "monitor."),
		Entry("by api host", 22, "--host", "api"),
		Entry("paginated only", 8, "--paginated"),
		Entry("paginated assets", 2, "--group", "assets", "--paginated"),
	)

	It("should report when nothing matches", func() {
		res := run("", "operations", "--group", "nothing")
		Expect(res.err).NotTo(HaveOccurred())
		Expect(res.stdout).To(ContainSubstring("No operations match the given filters"))
	})

	It("should render YAML", func() {
		res := run("", "operations", "--group", "tags", "-o", "yaml")
		Expect(res.err).NotTo(HaveOccurred())
		Expect(res.stdout).To(ContainSubstring("- group: tags"))
		Expect(res.stdout).To(ContainSubstring("  name: ListTagsForResource"))
		Expect(res.stdout).To(ContainSubstring("  hostPrefix: api."))
	})
})

var _ = Describe("describe", func() {
	It("should show the endpoint and request fields", func() {
		res := run("", "describe", "describeasset", "-o", "json")
		Expect(res.err).NotTo(HaveOccurred())

		var view struct {
			Name     string              `json:"name"`
			Method   string              `json:"method"`
			Endpoint string              `json:"endpoint"`
			Fields   []iotsitewise.Field `json:"fields"`
		}
		decodeJSON(res.stdout, &view)
		Expect(view.Name).To(Equal("DescribeAsset"))
		Expect(view.Method).To(Equal("GET"))
		Expect(view.Endpoint).To(Equal("https://api.iotsitewise.us-west-2.amazonaws.com/assets/{assetId}"))
		Expect(view.Fields).To(ContainElement(iotsitewise.Field{
			Name: "AssetId", JSONName: "assetId", Type: "string", Location: "uri", Required: true,
		}))
	})

	It("should use a custom endpoint without host prefix", func() {
		res := run("", "describe", "GetAssetPropertyValue", "--endpoint", "localhost:4566/", "-o", "json")
		Expect(res.err).NotTo(HaveOccurred())

		var view map[string]any
		decodeJSON(res.stdout, &view)
		Expect(view["endpoint"]).To(Equal("https://localhost:4566/properties/latest"))
	})

	It("should print a table with the documentation", func() {
		res := run("", "describe", "CreateAsset")
		Expect(res.err).NotTo(HaveOccurred())
		Expect(res.stdout).To(ContainSubstring("OPERATION   CreateAsset"))
		Expect(res.stdout).To(ContainSubstring("ENDPOINT    https://api.iotsitewise.us-west-2.amazonaws.com/assets"))
		Expect(res.stdout).To(ContainSubstring("assetModelId"))
		Expect(res.stdout).To(ContainSubstring("body"))
	})

	It("should fail for an unknown operation", func() {
		res := run("", "describe", "CreateWidget")
		Expect(res.err).To(MatchError(iotsitewise.ErrUnknownOperation))
	})
})

var _ = Describe("validate", func() {
	It("should accept a valid YAML payload from stdin", func() {
		payload := "assetName: Wind Turbine 1\nassetModelId: " + assetModelID + "\n"
		res := run(payload, "validate", "CreateAsset")
		Expect(res.err).NotTo(HaveOccurred())
		Expect(res.stdout).To(Equal("CreateAssetRequest is valid\n"))
	})

	It("should read a JSON payload from a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "request.json")
		payload := `{"assetId": "` + assetID + `", "assetName": "Turbine"}`
		Expect(os.WriteFile(path, []byte(payload), 0644)).To(Succeed())

		res := run("", "validate", "UpdateAsset", path)
		Expect(res.err).NotTo(HaveOccurred())
		Expect(res.stdout).To(ContainSubstring("UpdateAssetRequest is valid"))
	})

	It("should list every problem and fail", func() {
		res := run(`{"assetModelId": "not-an-id"}`, "validate", "CreateAsset", "-")
		Expect(res.err).To(MatchError(cli.ErrValidationFailed))
		Expect(res.stdout).To(ContainSubstring("CreateAssetRequest has 3 problem(s):"))
		Expect(res.stdout).To(ContainSubstring("missing required field, CreateAssetRequest.AssetName."))
		Expect(res.stdout).To(ContainSubstring("CreateAssetRequest.AssetModelId"))
	})

	It("should report nested problems as JSON", func() {
		payload := `{
			"assetModelName": "Turbine",
			"assetModelProperties": [
				{"name": "Speed", "dataType": "DOUBLE", "type": {"metric": {"expression": "AVG(x)", "variables": [], "window": {"tumbling": {"interval": "2h"}}}}}
			]
		}`
		res := run(payload, "validate", "CreateAssetModel", "-o", "json")
		Expect(res.err).To(MatchError(cli.ErrValidationFailed))

		var view struct {
			Valid    bool `json:"valid"`
			Problems []struct {
				Field string `json:"field"`
				Code  string `json:"code"`
			} `json:"problems"`
		}
		decodeJSON(res.stdout, &view)
		Expect(view.Valid).To(BeFalse())
		Expect(view.Problems).To(ContainElement(HaveField("Field", "CreateAssetModelRequest.AssetModelProperties[0].Type.Metric.Expression")))
		Expect(view.Problems).To(ContainElement(HaveField("Field", "CreateAssetModelRequest.AssetModelProperties[0].Type.Metric.Window.Tumbling.Interval")))
	})

	It("should reject members the request does not declare", func() {
		res := run(`{"assetName": "x", "bogus": 1}`, "validate", "CreateAsset")
		Expect(res.err).To(MatchError(ContainSubstring("failed to decode payload")))
	})

	It("should fail for a missing file", func() {
		res := run("", "validate", "CreateAsset", filepath.Join(GinkgoT().TempDir(), "missing.json"))
		Expect(res.err).To(MatchError(ContainSubstring("failed to read payload")))
	})
})

var _ = Describe("skeleton", func() {
	It("should print every member", func() {
		res := run("", "skeleton", "CreateAsset")
		Expect(res.err).NotTo(HaveOccurred())

		var skeleton map[string]any
		decodeJSON(res.stdout, &skeleton)
		Expect(skeleton).To(HaveKeyWithValue("assetName", ""))
		Expect(skeleton).To(HaveKeyWithValue("clientToken", ""))
		Expect(skeleton).To(HaveKey("tags"))
	})

	It("should fill the client token of idempotent operations", func() {
		res := run("", "skeleton", "CreateAsset", "--fill-token", "--required-only")
		Expect(res.err).NotTo(HaveOccurred())

		var skeleton map[string]any
		decodeJSON(res.stdout, &skeleton)
		Expect(skeleton).To(HaveLen(3))
		Expect(skeleton).To(HaveKey("assetModelId"))
		Expect(skeleton["clientToken"]).To(HaveLen(36))
	})

	It("should not add a token to other operations", func() {
		res := run("", "skeleton", "DescribeAsset", "--fill-token", "-o", "yaml")
		Expect(res.err).NotTo(HaveOccurred())
		Expect(res.stdout).To(Equal("assetId: \"\"\n"))
	})
})

var _ = Describe("resolve", func() {
	It("should match a full URL with query members", func() {
		res := run("", "resolve", "GET", "https://api.iotsitewise.us-east-1.amazonaws.com/assets?maxResults=10&filter=TOP_LEVEL", "-o", "json")
		Expect(res.err).NotTo(HaveOccurred())

		var view struct {
			Operation string         `json:"operation"`
			Request   map[string]any `json:"request"`
		}
		decodeJSON(res.stdout, &view)
		Expect(view.Operation).To(Equal("ListAssets"))
		Expect(view.Request).To(HaveKeyWithValue("maxResults", BeNumerically("==", 10)))
		Expect(view.Request).To(HaveKeyWithValue("filter", "TOP_LEVEL"))
	})

	It("should bind path labels", func() {
		res := run("", "resolve", "put", "/assets/"+assetID+"/properties/prop-1", "-o", "json")
		Expect(res.err).NotTo(HaveOccurred())

		var view struct {
			Operation string            `json:"operation"`
			Labels    map[string]string `json:"labels"`
		}
		decodeJSON(res.stdout, &view)
		Expect(view.Operation).To(Equal("UpdateAssetProperty"))
		Expect(view.Labels).To(Equal(map[string]string{"assetId": assetID, "propertyId": "prop-1"}))
	})

	It("should tell operations on one path apart by method", func() {
		for method, name := range map[string]string{
			"GET":    "ListTagsForResource",
			"POST":   "TagResource",
			"DELETE": "UntagResource",
		} {
			res := run("", "resolve", method, "/tags?resourceArn=arn", "-o", "json")
			Expect(res.err).NotTo(HaveOccurred())
			Expect(res.stdout).To(ContainSubstring(`"operation": "` + name + `"`))
		}
	})

	It("should print the request and its problems", func() {
		res := run("", "resolve", "GET", "/properties/latest?assetId=bad", "--check")
		Expect(res.err).NotTo(HaveOccurred())
		Expect(res.stdout).To(ContainSubstring("Operation: GetAssetPropertyValue"))
		Expect(res.stdout).To(ContainSubstring("AssetId: \"bad\""))
		Expect(res.stdout).To(ContainSubstring("  - "))
	})

	It("should reject a host prefix that does not serve the operation", func() {
		res := run("", "resolve", "GET", "https://api.iotsitewise.us-east-1.amazonaws.com/properties/latest")
		Expect(res.err).To(MatchError(iotsitewise.ErrUnknownOperation))
	})

	It("should reject an unknown method", func() {
		res := run("", "resolve", "PATCH", "/assets/"+assetID)
		Expect(res.err).To(MatchError(iotsitewise.ErrUnknownOperation))
	})
})

var _ = Describe("arn", func() {
	It("should build an ARN in the configured region", func() {
		res := run("", "arn", "build", "asset", assetID, "--account", "123456789012")
		Expect(res.err).NotTo(HaveOccurred())
		Expect(res.stdout).To(Equal("arn:aws:iotsitewise:us-west-2:123456789012:asset/" + assetID + "\n"))
	})

	It("should take the account from the environment", func() {
		GinkgoT().Setenv("SITEWISE_AWS_ACCOUNTID", "210987654321")
		res := run("", "arn", "build", "portal", assetID)
		Expect(res.err).NotTo(HaveOccurred())
		Expect(res.stdout).To(ContainSubstring(":210987654321:portal/"))
	})

	It("should require an account", func() {
		res := run("", "arn", "build", "asset", assetID)
		Expect(res.err).To(MatchError(ContainSubstring("account ID is required")))
	})

	It("should reject unknown resource types", func() {
		res := run("", "arn", "build", "widget", assetID, "--account", "123456789012")
		Expect(res.err).To(MatchError(iotsitewise.ErrInvalidARN))
	})

	It("should parse an ARN", func() {
		res := run("", "arn", "parse", "arn:aws-cn:iotsitewise:cn-north-1:123456789012:asset-model/"+assetModelID, "-o", "json")
		Expect(res.err).NotTo(HaveOccurred())

		var view map[string]string
		decodeJSON(res.stdout, &view)
		Expect(view).To(HaveKeyWithValue("partition", "aws-cn"))
		Expect(view).To(HaveKeyWithValue("region", "cn-north-1"))
		Expect(view).To(HaveKeyWithValue("resourceType", "asset-model"))
		Expect(view).To(HaveKeyWithValue("resourceId", assetModelID))
	})
})

var _ = Describe("time", func() {
	It("should split a time into seconds and nanoseconds", func() {
		res := run("", "time", "to-nanos", "2020-03-01T12:00:00.5Z", "-o", "json")
		Expect(res.err).NotTo(HaveOccurred())

		var view map[string]any
		decodeJSON(res.stdout, &view)
		Expect(view["timeInSeconds"]).To(BeNumerically("==", 1583064000))
		Expect(view["offsetInNanos"]).To(BeNumerically("==", 500000000))
	})

	It("should join seconds and nanoseconds", func() {
		res := run("", "time", "from-nanos", "1583064000", "500000000", "-o", "json")
		Expect(res.err).NotTo(HaveOccurred())

		var view map[string]any
		decodeJSON(res.stdout, &view)
		Expect(view["time"]).To(Equal("2020-03-01T12:00:00.5Z"))
	})

	It("should reject times outside the model range", func() {
		res := run("", "time", "from-nanos", "0")
		Expect(res.err).To(MatchError(ContainSubstring("TimeInSeconds")))
	})

	It("should reject malformed input", func() {
		Expect(run("", "time", "to-nanos", "yesterday").err).To(MatchError(ContainSubstring("invalid time")))
		Expect(run("", "time", "from-nanos", "x").err).To(MatchError(ContainSubstring("invalid seconds")))
	})
})

var _ = Describe("version", func() {
	It("should print version information as JSON", func() {
		res := run("", "version", "--json")
		Expect(res.err).NotTo(HaveOccurred())

		var info map[string]string
		decodeJSON(res.stdout, &info)
		Expect(info).To(HaveKeyWithValue("apiVersion", "2019-12-02"))
		Expect(info).To(HaveKey("version"))
	})

	It("should print version information as text", func() {
		res := run("", "version")
		Expect(res.err).NotTo(HaveOccurred())
		Expect(res.stdout).To(ContainSubstring("API version: 2019-12-02"))
	})
})

var _ = Describe("configuration", func() {
	It("should read the output format from the config file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
		Expect(os.WriteFile(path, []byte("output:\n  format: json\n"), 0644)).To(Succeed())

		res := run("", "operations", "--group", "portals", "--config", path)
		Expect(res.err).NotTo(HaveOccurred())

		var views []map[string]any
		decodeJSON(res.stdout, &views)
		Expect(views).To(HaveLen(5))
	})

	It("should accept an upper-case log level", func() {
		res := run("", "operations", "--group", "tags", "--log-level", "DEBUG")
		Expect(res.err).NotTo(HaveOccurred())
		Expect(res.stdout).To(ContainSubstring("ListTagsForResource"))
	})

	It("should reject an unknown output format", func() {
		res := run("", "operations", "-o", "xml")
		Expect(res.err).To(MatchError(ContainSubstring("invalid configuration")))
	})
})
