package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/sitewise/internal/config"
)

var _ = Describe("Config", func() {
	var (
		tempDir string
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "sitewise-config-test")
		Expect(err).NotTo(HaveOccurred())
		config.ResetConfig()

		// Keep the user's environment out of the loaded values.
		for _, key := range []string{
			"SITEWISE_AWS_REGION", "AWS_REGION", "AWS_DEFAULT_REGION",
			"SITEWISE_OUTPUT_FORMAT", "SITEWISE_AWS_ENDPOINT", "AWS_ENDPOINT_URL_IOTSITEWISE",
		} {
			GinkgoT().Setenv(key, "")
		}
		GinkgoT().Setenv("HOME", tempDir)
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
		config.ResetConfig()
	})

	Describe("LoadConfig", func() {
		Context("when no path is given and no file exists", func() {
			It("should return the defaults", func() {
				cfg, err := config.LoadConfig("")
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Output.Format).To(Equal("table"))
				Expect(cfg.Log.Level).To(Equal("warn"))
				Expect(cfg.Log.Format).To(Equal("text"))
				Expect(cfg.AWS.Region).To(BeEmpty())
				Expect(cfg.Validate()).To(Succeed())
			})
		})

		Context("when the given file does not exist", func() {
			It("should return an error", func() {
				_, err := config.LoadConfig(filepath.Join(tempDir, "missing.yaml"))
				Expect(err).To(MatchError(ContainSubstring("does not exist")))
			})
		})

		Context("when the config file exists", func() {
			It("should load values from the file", func() {
				configPath := filepath.Join(tempDir, "config.yaml")
				configContent := `
aws:
  region: eu-west-1
  accountID: "123456789012"
  endpoint: http://localhost:4566
output:
  format: json
log:
  level: debug
`
				Expect(os.WriteFile(configPath, []byte(configContent), 0644)).To(Succeed())

				cfg, err := config.LoadConfig(configPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.AWS.Region).To(Equal("eu-west-1"))
				Expect(cfg.AWS.AccountID).To(Equal("123456789012"))
				Expect(cfg.AWS.Endpoint).To(Equal("http://localhost:4566"))
				Expect(cfg.Output.Format).To(Equal("json"))
				Expect(cfg.Log.Level).To(Equal("debug"))
				Expect(cfg.Log.Format).To(Equal("text"))
			})
		})

		Context("when the file sits in the home directory", func() {
			It("should be picked up without an explicit path", func() {
				dir := filepath.Join(tempDir, ".sitewise")
				Expect(os.MkdirAll(dir, 0755)).To(Succeed())
				Expect(os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output:\n  format: yaml\n"), 0644)).To(Succeed())

				cfg, err := config.LoadConfig("")
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Output.Format).To(Equal("yaml"))
			})
		})

		Context("when environment variables are set", func() {
			It("should prefer SITEWISE_ variables", func() {
				GinkgoT().Setenv("AWS_REGION", "ap-northeast-1")
				cfg, err := config.LoadConfig("")
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.AWS.Region).To(Equal("ap-northeast-1"))

				config.ResetConfig()
				GinkgoT().Setenv("SITEWISE_AWS_REGION", "us-west-2")
				cfg, err = config.LoadConfig("")
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.AWS.Region).To(Equal("us-west-2"))
			})
		})
	})

	Describe("Set", func() {
		It("should override loaded values", func() {
			_, err := config.LoadConfig("")
			Expect(err).NotTo(HaveOccurred())

			config.Set("output.format", "yaml")
			Expect(config.GetString("output.format")).To(Equal("yaml"))
			Expect(config.GetConfig().Output.Format).To(Equal("yaml"))
		})
	})

	Describe("Validate", func() {
		var cfg *config.Config

		BeforeEach(func() {
			cfg = &config.Config{
				Output: config.OutputConfig{Format: "table"},
				Log:    config.LogConfig{Level: "info", Format: "json"},
			}
		})

		It("should accept a valid configuration", func() {
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should reject an unknown output format", func() {
			cfg.Output.Format = "xml"
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("output format")))
		})

		It("should reject an unknown log level", func() {
			cfg.Log.Level = "trace"
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("log level")))
		})

		DescribeTable("should accept log levels and formats in any case",
			func(level, format string) {
				cfg.Log.Level = level
				cfg.Log.Format = format
				Expect(cfg.Validate()).To(Succeed())
			},
			Entry("upper-case level", "DEBUG", "json"),
			Entry("mixed-case level", "Info", "text"),
			Entry("warning alias", "warning", "json"),
			Entry("upper-case format", "WARN", "JSON"),
		)

		It("should accept an upper-case output format", func() {
			cfg.Output.Format = "YAML"
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should reject a malformed account ID", func() {
			cfg.AWS.AccountID = "12345"
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("12 digits")))

			cfg.AWS.AccountID = "12345678901a"
			Expect(cfg.Validate()).To(HaveOccurred())
		})
	})
})
