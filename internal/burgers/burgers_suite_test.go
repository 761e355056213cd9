package burgers_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBurgers(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Burgers Suite")
}
