package iotsitewise_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestIoTSiteWise(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "IoT SiteWise Model Suite")
}
