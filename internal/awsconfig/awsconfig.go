// Package awsconfig resolves the AWS region and profile from the shared AWS
// configuration chain.
package awsconfig

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/nandemo-ya/sitewise/internal/logging"
)

// options holds optional overrides for AWS config loading.
type options struct {
	profile     string
	region      string
	configFiles []string
}

// Option customizes how AWS config is loaded.
type Option func(*options)

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithConfigFiles replaces the shared config files that are read.
func WithConfigFiles(files ...string) Option {
	return func(o *options) { o.configFiles = files }
}

// Load loads AWS SDK v2 config. By default it inherits the shell's AWS setup
// (AWS_PROFILE, AWS_REGION, ~/.aws/config).
func Load(ctx context.Context, opts ...Option) (aws.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.Component("awsconfig")
	logger.Debug("loading AWS config", "profile", o.profile, "region", o.region)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if len(o.configFiles) > 0 {
		loadOpts = append(loadOpts, config.WithSharedConfigFiles(o.configFiles))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	logger.Debug("AWS config loaded", "region", cfg.Region)
	return cfg, nil
}

// ResolveRegion returns the region from the AWS config chain, or fallback
// when the chain has none.
func ResolveRegion(ctx context.Context, fallback string, opts ...Option) (string, error) {
	cfg, err := Load(ctx, opts...)
	if err != nil {
		return "", err
	}
	if cfg.Region == "" {
		return fallback, nil
	}
	return cfg.Region, nil
}
