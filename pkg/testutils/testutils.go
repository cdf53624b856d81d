package testutils

import (
	"github.com/onsi/gomega"
)

func Must[T any](o T, err error) T {
	gomega.ExpectWithOffset(1, err).To(gomega.Succeed())
	return o
}

func Must2[R any, S any](a R, b S, err error) (R, S) {
	gomega.ExpectWithOffset(1, err).To(gomega.Succeed())
	return a, b
}

func MustBeSuccessful(err error) {
	gomega.ExpectWithOffset(1, err).To(gomega.Succeed())
}
