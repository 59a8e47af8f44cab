package iotsitewise

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
)

// ARNService is the service component of SiteWise resource ARNs.
const ARNService = "iotsitewise"

// ErrInvalidARN is returned when a string is not a SiteWise resource ARN.
var ErrInvalidARN = errors.New("invalid iotsitewise ARN")

// ResourceType is the resource-type component of a SiteWise ARN.
type ResourceType string

const (
	ResourceTypeAsset      ResourceType = "asset"
	ResourceTypeAssetModel ResourceType = "asset-model"
	ResourceTypeGateway    ResourceType = "gateway"
	ResourceTypePortal     ResourceType = "portal"
	ResourceTypeProject    ResourceType = "project"
	ResourceTypeDashboard  ResourceType = "dashboard"
)

// Values returns all resource types that carry an ARN.
func (ResourceType) Values() []ResourceType {
	return []ResourceType{
		ResourceTypeAsset,
		ResourceTypeAssetModel,
		ResourceTypeGateway,
		ResourceTypePortal,
		ResourceTypeProject,
		ResourceTypeDashboard,
	}
}

func (t ResourceType) valid() bool {
	for _, v := range t.Values() {
		if v == t {
			return true
		}
	}
	return false
}

// ResourceARN is a parsed SiteWise resource ARN.
type ResourceARN struct {
	arn.ARN
	Type ResourceType
	ID   string
}

// PartitionForRegion returns the AWS partition a region belongs to.
func PartitionForRegion(region string) string {
	switch {
	case strings.HasPrefix(region, "cn-"):
		return "aws-cn"
	case strings.HasPrefix(region, "us-gov-"):
		return "aws-us-gov"
	default:
		return "aws"
	}
}

// BuildARN formats the ARN of a resource, e.g.
// arn:aws:iotsitewise:us-east-1:123456789012:asset/<id>.
func BuildARN(resourceType ResourceType, region, accountID, id string) string {
	return arn.ARN{
		Partition: PartitionForRegion(region),
		Service:   ARNService,
		Region:    region,
		AccountID: accountID,
		Resource:  string(resourceType) + "/" + id,
	}.String()
}

// ParseResourceARN splits a SiteWise ARN into its components.
func ParseResourceARN(s string) (*ResourceARN, error) {
	parsed, err := arn.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidARN, err)
	}
	if parsed.Service != ARNService {
		return nil, fmt.Errorf("%w: service %q", ErrInvalidARN, parsed.Service)
	}
	typ, id, ok := strings.Cut(parsed.Resource, "/")
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: resource %q", ErrInvalidARN, parsed.Resource)
	}
	rt := ResourceType(typ)
	if !rt.valid() {
		return nil, fmt.Errorf("%w: resource type %q", ErrInvalidARN, typ)
	}
	return &ResourceARN{ARN: parsed, Type: rt, ID: id}, nil
}
