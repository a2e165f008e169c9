// SPDX-FileCopyrightText:  © 2024 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/siemens-healthineers/kubemerge/internal/yaml"
)

func TestYamlPkg(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "yaml pkg Tests", Label("ci", "internal", "yaml"))
}

type testData struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

var _ = Describe("yaml pkg", func() {
	Describe("FromBytes", Label("unit"), func() {
		When("data is invalid", func() {
			It("returns error", func() {
				actual, err := yaml.FromBytes[testData]([]byte("name: ["))

				Expect(actual).To(BeNil())
				Expect(err).To(MatchError(ContainSubstring("could not unmarshall")))
			})
		})

		When("data is valid", func() {
			It("returns unmarshalled data", func() {
				actual, err := yaml.FromBytes[testData]([]byte("name: test\ncount: 42"))

				Expect(err).ToNot(HaveOccurred())
				Expect(actual.Name).To(Equal("test"))
				Expect(actual.Count).To(Equal(42))
			})
		})
	})

	Describe("FromFile", Label("integration"), func() {
		When("file does not exist", func() {
			It("returns error", func() {
				actual, err := yaml.FromFile[testData]("non-existent")

				Expect(actual).To(BeNil())
				Expect(err).To(MatchError(os.ErrNotExist))
			})
		})
	})

	Describe("ToFile", Label("integration"), func() {
		It("round-trips the data", func() {
			path := filepath.Join(GinkgoT().TempDir(), "test.yaml")
			written := &testData{Name: "test", Count: 42}

			Expect(yaml.ToFile(path, written)).To(Succeed())

			actual, err := yaml.FromFile[testData](path)

			Expect(err).ToNot(HaveOccurred())
			Expect(actual).To(Equal(written))
		})
	})
})
