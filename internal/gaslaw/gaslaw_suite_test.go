package gaslaw_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGaslaw(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Gaslaw Suite")
}
