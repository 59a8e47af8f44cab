package cli_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/sitewise/internal/cli"
)

func TestCLI(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CLI Suite")
}

var _ = BeforeEach(func() {
	GinkgoT().Setenv("HOME", GinkgoT().TempDir())
	for _, key := range []string{
		"SITEWISE_AWS_REGION", "SITEWISE_AWS_ACCOUNTID", "SITEWISE_OUTPUT_FORMAT",
		"AWS_REGION", "AWS_DEFAULT_REGION", "AWS_PROFILE", "AWS_ENDPOINT_URL_IOTSITEWISE",
	} {
		GinkgoT().Setenv(key, "")
	}
})

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the sitewise command tree in-process with the given stdin.
func run(stdin string, args ...string) result {
	root := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--no-color", "--region", "us-west-2"))

	err := root.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}
