// Package cli implements the sitewise command line tool.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nandemo-ya/sitewise/internal/awsconfig"
	"github.com/nandemo-ya/sitewise/internal/config"
	"github.com/nandemo-ya/sitewise/internal/endpoints"
	"github.com/nandemo-ya/sitewise/internal/logging"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configFile string
	region     string
	profile    string
	endpoint   string
	output     string
	logLevel   string
	noColor    bool

	cfg *config.Config
}

// flagKeys maps persistent flags to the configuration keys they override.
var flagKeys = map[string]string{
	"region":    "aws.region",
	"profile":   "aws.profile",
	"endpoint":  "aws.endpoint",
	"output":    "output.format",
	"log-level": "log.level",
}

// NewRootCmd builds the sitewise command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "sitewise",
		Short: "Inspect and validate AWS IoT SiteWise API payloads",
		Long: `sitewise works with the AWS IoT SiteWise API model offline.
It lists the operations of the service, shows where each one is sent,
generates request skeletons and validates request payloads against the
constraints of the model before they are sent.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initialize(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Config file (default $HOME/.sitewise/config.yaml)")
	flags.StringVar(&opts.region, "region", "", "AWS region")
	flags.StringVar(&opts.profile, "profile", "", "AWS shared config profile")
	flags.StringVar(&opts.endpoint, "endpoint", "", "Custom service endpoint")
	flags.StringVarP(&opts.output, "output", "o", "", "Output format: table, json, yaml")
	flags.StringVarP(&opts.logLevel, "log-level", "l", "", "Log level (debug, info, warn, error)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newOperationsCmd(opts),
		newDescribeCmd(opts),
		newValidateCmd(opts),
		newSkeletonCmd(opts),
		newResolveCmd(opts),
		newARNCmd(opts),
		newTimeCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (o *globalOptions) initialize(cmd *cobra.Command) error {
	config.ResetConfig()
	if _, err := config.LoadConfig(o.configFile); err != nil {
		return err
	}
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			config.Set(key, f.Value.String())
		}
	}

	o.cfg = config.GetConfig()
	if err := o.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.Initialize(&logging.Config{
		Level:  logging.ParseLevel(o.cfg.Log.Level),
		Format: o.cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if o.noColor {
		pterm.DisableStyling()
	}
	return nil
}

// resolver returns an endpoint resolver for the configured region. Without
// an explicit region it consults the AWS config chain.
func (o *globalOptions) resolver(ctx context.Context) *endpoints.Resolver {
	return endpoints.NewResolver(endpoints.Config{
		Region:   o.resolveRegion(ctx),
		Endpoint: o.cfg.AWS.Endpoint,
	})
}

func (o *globalOptions) resolveRegion(ctx context.Context) string {
	if o.cfg.AWS.Region != "" {
		return o.cfg.AWS.Region
	}
	var opts []awsconfig.Option
	if o.cfg.AWS.Profile != "" {
		opts = append(opts, awsconfig.WithProfile(o.cfg.AWS.Profile))
	}
	region, err := awsconfig.ResolveRegion(ctx, endpoints.DefaultRegion, opts...)
	if err != nil {
		logging.Component("cli").Warn("falling back to default region", "region", endpoints.DefaultRegion, "error", err)
		return endpoints.DefaultRegion
	}
	return region
}

func (o *globalOptions) format() string {
	if o.cfg == nil {
		return "table"
	}
	return o.cfg.Output.Format
}
