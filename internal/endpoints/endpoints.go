// Package endpoints builds the URLs AWS IoT SiteWise operations are sent to.
package endpoints

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/nandemo-ya/sitewise/service/iotsitewise"
)

const (
	// ServiceName is the endpoint prefix of the service.
	ServiceName = "iotsitewise"

	// DefaultRegion is used when no region is configured.
	DefaultRegion = "us-east-1"
)

// Config holds endpoint resolution settings
type Config struct {
	// Region is the AWS region
	Region string

	// Endpoint is the API endpoint (optional, for custom endpoints like
	// emulators). Host prefixes are not applied to it.
	Endpoint string
}

// Resolver resolves operation endpoints for one region
type Resolver struct {
	config Config
}

// NewResolver creates a new resolver
func NewResolver(config Config) *Resolver {
	if config.Region == "" {
		config.Region = DefaultRegion
	}
	return &Resolver{config: config}
}

// Region returns the region the resolver builds endpoints for.
func (r *Resolver) Region() string {
	return r.config.Region
}

// BuildEndpoint builds the base URL for a host prefix such as "api.".
func (r *Resolver) BuildEndpoint(hostPrefix string) string {
	if r.config.Endpoint != "" {
		endpoint := r.config.Endpoint
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		return strings.TrimSuffix(endpoint, "/")
	}

	return fmt.Sprintf("https://%s%s.%s.%s", hostPrefix, ServiceName, r.config.Region, dnsSuffix(r.config.Region))
}

// Endpoint returns the base URL of an operation.
func (r *Resolver) Endpoint(op *iotsitewise.Operation) string {
	return r.BuildEndpoint(op.HostPrefix)
}

var labelPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// ResolveURL returns the full URL of an operation, with the path labels
// replaced by the escaped values in labels.
func (r *Resolver) ResolveURL(op *iotsitewise.Operation, labels map[string]string) (string, error) {
	var missing []string
	path := labelPattern.ReplaceAllStringFunc(op.Path, func(m string) string {
		name := m[1 : len(m)-1]
		value, ok := labels[name]
		if !ok || value == "" {
			missing = append(missing, name)
			return m
		}
		return url.PathEscape(value)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%s: missing path labels %s", op.Name, strings.Join(missing, ", "))
	}
	return r.Endpoint(op) + path, nil
}

// PathLabels returns the label names of a URI template in order.
func PathLabels(path string) []string {
	var labels []string
	for _, m := range labelPattern.FindAllStringSubmatch(path, -1) {
		labels = append(labels, m[1])
	}
	return labels
}

func dnsSuffix(region string) string {
	if strings.HasPrefix(region, "cn-") {
		return "amazonaws.com.cn"
	}
	return "amazonaws.com"
}
