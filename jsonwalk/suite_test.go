package jsonwalk_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestJSONWalk(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "JSONWalk Suite")
}
