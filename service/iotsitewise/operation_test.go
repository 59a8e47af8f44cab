package iotsitewise_test

import (
	"net/http"
	"reflect"
	"sort"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/sitewise/service/iotsitewise"
)

var _ = Describe("Operation catalog", func() {
	It("lists every operation ordered by name", func() {
		ops := iotsitewise.Operations()
		Expect(ops).To(HaveLen(40))

		names := make([]string, len(ops))
		for i, op := range ops {
			names[i] = op.Name
		}
		Expect(sort.StringsAreSorted(names)).To(BeTrue())
	})

	It("returns a copy of the catalog", func() {
		ops := iotsitewise.Operations()
		ops[0] = nil
		Expect(iotsitewise.Operations()[0]).NotTo(BeNil())
	})

	It("keeps the catalog unchanged when returned entries are modified", func() {
		ops := iotsitewise.Operations()
		name, path := ops[0].Name, ops[0].Path
		ops[0].Path = "/changed"
		ops[0].Paginated = !ops[0].Paginated

		op, err := iotsitewise.LookupOperation(name)
		Expect(err).NotTo(HaveOccurred())
		Expect(op.Path).To(Equal(path))
		Expect(op.Paginated).To(Equal(!ops[0].Paginated))
		Expect(iotsitewise.Operations()[0].Path).To(Equal(path))
	})

	It("pairs each operation with its request and result types", func() {
		for _, op := range iotsitewise.Operations() {
			req := op.NewRequest()
			Expect(reflect.TypeOf(req).Elem().Name()).To(Equal(op.Name+"Request"), op.Name)
			Expect(reflect.TypeOf(op.NewResult()).Elem().Name()).To(Equal(op.Name+"Result"), op.Name)
			Expect(op.NewRequest()).NotTo(BeIdenticalTo(req))

			found, err := iotsitewise.OperationFor(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Name).To(Equal(op.Name))
		}
	})

	It("addresses every operation over HTTP", func() {
		methods := []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}
		prefixes := []string{"api.", "monitor.", "data."}
		for _, op := range iotsitewise.Operations() {
			Expect(methods).To(ContainElement(op.Method), op.Name)
			Expect(prefixes).To(ContainElement(op.HostPrefix), op.Name)
			Expect(op.Path).To(HavePrefix("/"), op.Name)
		}
	})

	DescribeTable("operation details",
		func(name, method, path, hostPrefix, group string, paginated, idempotent bool) {
			op, err := iotsitewise.LookupOperation(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(op.Method).To(Equal(method))
			Expect(op.Path).To(Equal(path))
			Expect(op.HostPrefix).To(Equal(hostPrefix))
			Expect(op.Group()).To(Equal(group))
			Expect(op.Paginated).To(Equal(paginated))
			Expect(op.Idempotent).To(Equal(idempotent))
		},
		Entry("CreateAsset", "CreateAsset", http.MethodPost, "/assets", "api.", "assets", false, true),
		Entry("ListAssets", "ListAssets", http.MethodGet, "/assets", "api.", "assets", true, false),
		Entry("DescribeGateway", "DescribeGateway", http.MethodGet, "/20200301/gateways/{gatewayId}", "api.", "gateways", false, false),
		Entry("CreatePortal", "CreatePortal", http.MethodPost, "/portals", "monitor.", "portals", false, true),
		Entry("BatchPutAssetPropertyValue", "BatchPutAssetPropertyValue", http.MethodPost, "/properties", "data.", "properties", false, false),
		Entry("GetAssetPropertyValueHistory", "GetAssetPropertyValueHistory", http.MethodGet, "/properties/history", "data.", "properties", true, false),
		Entry("TagResource", "TagResource", http.MethodPost, "/tags", "api.", "tags", false, false),
	)

	Describe("LookupOperation", func() {
		It("ignores case", func() {
			op, err := iotsitewise.LookupOperation("describeasset")
			Expect(err).NotTo(HaveOccurred())
			Expect(op.Name).To(Equal("DescribeAsset"))
		})

		It("reports unknown operations", func() {
			_, err := iotsitewise.LookupOperation("DescribeWidget")
			Expect(err).To(MatchError(iotsitewise.ErrUnknownOperation))
			Expect(err.Error()).To(ContainSubstring(`"DescribeWidget"`))
		})
	})

	Describe("OperationFor", func() {
		It("rejects a nil request", func() {
			_, err := iotsitewise.OperationFor(nil)
			Expect(err).To(MatchError(iotsitewise.ErrUnknownOperation))
		})
	})

	Describe("RequestFields", func() {
		It("describes locations and required members", func() {
			op, err := iotsitewise.LookupOperation("GetAssetPropertyValueHistory")
			Expect(err).NotTo(HaveOccurred())

			fields := map[string]iotsitewise.Field{}
			for _, f := range op.RequestFields() {
				fields[f.Name] = f
			}
			Expect(fields).To(HaveKeyWithValue("AssetId", iotsitewise.Field{
				Name: "AssetId", JSONName: "assetId", Type: "string", Location: "querystring",
			}))
			Expect(fields["StartDate"].Type).To(Equal("common.UnixTime"))
			Expect(fields["Qualities"].Type).To(Equal("[]iotsitewise.Quality"))
		})

		It("lists body members with no location", func() {
			op, err := iotsitewise.LookupOperation("CreateAsset")
			Expect(err).NotTo(HaveOccurred())

			var required []string
			for _, f := range op.RequestFields() {
				Expect(f.Location).To(BeEmpty())
				if f.Required {
					required = append(required, f.JSONName)
				}
			}
			Expect(required).To(ConsistOf("assetModelId", "assetName"))
		})

		It("marks URI labels as required", func() {
			op, err := iotsitewise.LookupOperation("UpdateAssetProperty")
			Expect(err).NotTo(HaveOccurred())
			for _, f := range op.RequestFields() {
				if f.Location == "uri" {
					Expect(f.Required).To(BeTrue(), f.Name)
					Expect(op.Path).To(ContainSubstring("{"+f.JSONName+"}"), f.Name)
				}
			}
		})
	})

	It("groups monitor operations under the portal host", func() {
		count := 0
		for _, op := range iotsitewise.Operations() {
			if op.HostPrefix == "monitor." {
				count++
				Expect([]string{"portals", "projects", "dashboards"}).To(ContainElement(op.Group()), op.Name)
				Expect(strings.Contains(op.Name, "Portal") ||
					strings.Contains(op.Name, "Project") || strings.Contains(op.Name, "Dashboard")).To(BeTrue(), op.Name)
			}
		}
		Expect(count).To(Equal(15))
	})
})
