package playsession_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPlaySession(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "PlaySession Suite")
}
