// SPDX-FileCopyrightText:  © 2025 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package merge

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/siemens-healthineers/kubemerge/internal/contracts/kubeconfig"
)

func TestMergeCmd(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "merge cmd Unit Tests", Label("unit", "ci", "cmd", "merge"))
}

var _ = BeforeSuite(func() {
	slog.SetDefault(slog.New(logr.ToSlogHandler(GinkgoLogr)))
})

func writeTempFile(content string) string {
	path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
	Expect(os.WriteFile(path, []byte(content), os.ModePerm)).To(Succeed())
	return path
}

var _ = Describe("merge cmd", func() {
	Describe("printSummary", func() {
		var lines []string
		capture := func(format string, a ...any) {
			lines = append(lines, fmt.Sprintf(format, a...))
		}

		BeforeEach(func() {
			lines = nil
		})

		When("current context is set", func() {
			It("prints counts and the current context", func() {
				config := &kubeconfig.Kubeconfig{
					Clusters:       []kubeconfig.NamedCluster{{Name: "c1"}, {Name: "c2"}},
					Contexts:       []kubeconfig.NamedContext{{Name: "ctx1"}},
					Users:          []kubeconfig.NamedUser{{Name: "u1"}},
					CurrentContext: "ctx1",
				}

				printSummary(config, capture)

				Expect(lines).To(Equal([]string{
					"Merged config contains:",
					"  - 2 clusters",
					"  - 1 contexts",
					"  - 1 users",
					"  - Current context: ctx1",
				}))
			})
		})

		When("current context is not set", func() {
			It("prints counts and a hint", func() {
				config := &kubeconfig.Kubeconfig{}

				printSummary(config, capture)

				Expect(lines).To(ContainElement("  - No current context set"))
			})
		})
	})

	Describe("loadDocuments", Label("integration"), func() {
		// covered end-to-end in the providers package tests; parse failure
		// propagation is tested here
		When("a file is invalid and skipInvalid is not set", func() {
			It("returns error", func() {
				path := writeTempFile("clusters: [")

				documents, err := loadDocuments([]string{path}, false)

				Expect(documents).To(BeNil())
				Expect(err).To(HaveOccurred())
			})
		})

		When("a file is invalid and skipInvalid is set", func() {
			It("skips the file", func() {
				invalid := writeTempFile("clusters: [")
				valid := writeTempFile("current-context: ctx1")

				documents, err := loadDocuments([]string{invalid, valid}, true)

				Expect(err).ToNot(HaveOccurred())
				Expect(documents).To(HaveLen(1))
				Expect(documents[0].Config.CurrentContext).To(Equal("ctx1"))
			})
		})
	})
})
