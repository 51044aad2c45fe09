package writeguard_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestWriteGuard(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "WriteGuard Suite")
}
