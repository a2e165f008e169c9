// SPDX-FileCopyrightText:  © 2025 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package merge_test

import (
	"log/slog"
	"testing"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/siemens-healthineers/kubemerge/internal/contracts/kubeconfig"
	"github.com/siemens-healthineers/kubemerge/internal/core/merge"
)

func TestMergePkg(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "merge pkg Unit Tests", Label("unit", "ci", "internal", "merge"))
}

var _ = BeforeSuite(func() {
	slog.SetDefault(slog.New(logr.ToSlogHandler(GinkgoLogr)))
})

func clusterDoc(source string, name string, server string) merge.Document {
	return merge.Document{
		Source: source,
		Config: &kubeconfig.Kubeconfig{
			Clusters: []kubeconfig.NamedCluster{
				{Name: name, Details: kubeconfig.Cluster{Server: server}},
			},
		},
	}
}

var _ = Describe("merge pkg", func() {
	Describe("Merge", func() {
		When("all documents are blank", func() {
			It("returns error", func() {
				documents := []merge.Document{
					{Source: "a.yaml", Config: &kubeconfig.Kubeconfig{}},
					{Source: "b.yaml", Config: nil},
				}

				actual, err := merge.Merge(documents)

				Expect(actual).To(BeNil())
				Expect(err).To(MatchError(merge.ErrNothingToMerge))
			})
		})

		When("input is empty", func() {
			It("returns error", func() {
				actual, err := merge.Merge(nil)

				Expect(actual).To(BeNil())
				Expect(err).To(MatchError(merge.ErrNothingToMerge))
			})
		})

		When("only one document has content", func() {
			It("yields that document's content unchanged", func() {
				skipVerify := true
				document := merge.Document{
					Source: "b.yaml",
					Config: &kubeconfig.Kubeconfig{
						Clusters: []kubeconfig.NamedCluster{
							{Name: "prod", Details: kubeconfig.Cluster{
								Server:        "https://prod:6443",
								Cert:          "cert-data",
								SkipTLSVerify: &skipVerify,
								Extra:         map[string]any{"proxy-url": "http://proxy"},
							}},
						},
						Contexts: []kubeconfig.NamedContext{
							{Name: "prod", Details: kubeconfig.Context{Cluster: "prod", User: "admin", Namespace: "kube-system"}},
						},
						Users: []kubeconfig.NamedUser{
							{Name: "admin", Details: kubeconfig.User{Token: "secret"}},
						},
						CurrentContext: "prod",
						Preferences:    map[string]any{"colors": true},
					},
				}
				documents := []merge.Document{
					{Source: "a.yaml", Config: &kubeconfig.Kubeconfig{}},
					document,
					{Source: "c.yaml", Config: &kubeconfig.Kubeconfig{}},
				}

				actual, err := merge.Merge(documents)

				Expect(err).ToNot(HaveOccurred())
				Expect(actual.Clusters).To(Equal(document.Config.Clusters))
				Expect(actual.Contexts).To(Equal(document.Config.Contexts))
				Expect(actual.Users).To(Equal(document.Config.Users))
				Expect(actual.CurrentContext).To(Equal("prod"))
				Expect(actual.Preferences).To(Equal(document.Config.Preferences))
			})
		})

		When("two documents define the same cluster name", func() {
			It("keeps the first occurrence", func() {
				documents := []merge.Document{
					clusterDoc("a.yaml", "x", "https://first:6443"),
					clusterDoc("b.yaml", "x", "https://second:6443"),
				}

				actual, err := merge.Merge(documents)

				Expect(err).ToNot(HaveOccurred())
				Expect(actual.Clusters).To(HaveLen(1))
				Expect(actual.Clusters[0].Details.Server).To(Equal("https://first:6443"))
			})
		})

		When("documents define distinct names", func() {
			It("keeps all entries in insertion order", func() {
				documents := []merge.Document{
					clusterDoc("a.yaml", "one", "https://one"),
					clusterDoc("b.yaml", "two", "https://two"),
					clusterDoc("c.yaml", "three", "https://three"),
				}

				actual, err := merge.Merge(documents)

				Expect(err).ToNot(HaveOccurred())
				Expect(actual.Clusters).To(HaveLen(3))
				Expect(actual.Clusters[0].Name).To(Equal("one"))
				Expect(actual.Clusters[1].Name).To(Equal("two"))
				Expect(actual.Clusters[2].Name).To(Equal("three"))
			})
		})

		When("two documents set the same preference key", func() {
			It("keeps the last occurrence", func() {
				documents := []merge.Document{
					{Source: "a.yaml", Config: &kubeconfig.Kubeconfig{Preferences: map[string]any{"k": 1}}},
					{Source: "b.yaml", Config: &kubeconfig.Kubeconfig{Preferences: map[string]any{"k": 2}}},
				}

				actual, err := merge.Merge(documents)

				Expect(err).ToNot(HaveOccurred())
				Expect(actual.Preferences).To(HaveKeyWithValue("k", 2))
			})
		})

		When("an earlier document has no current-context", func() {
			It("uses the first non-empty current-context", func() {
				documents := []merge.Document{
					clusterDoc("a.yaml", "one", "https://one"),
					{Source: "b.yaml", Config: &kubeconfig.Kubeconfig{CurrentContext: "ctx1"}},
					{Source: "c.yaml", Config: &kubeconfig.Kubeconfig{CurrentContext: "ctx2"}},
				}

				actual, err := merge.Merge(documents)

				Expect(err).ToNot(HaveOccurred())
				Expect(actual.CurrentContext).To(Equal("ctx1"))
			})
		})

		It("always emits canonical apiVersion and kind", func() {
			documents := []merge.Document{
				{Source: "a.yaml", Config: &kubeconfig.Kubeconfig{
					APIVersion:     "v2",
					Kind:           "SomethingElse",
					CurrentContext: "ctx",
				}},
			}

			actual, err := merge.Merge(documents)

			Expect(err).ToNot(HaveOccurred())
			Expect(actual.APIVersion).To(Equal(kubeconfig.APIVersionV1))
			Expect(actual.Kind).To(Equal(kubeconfig.KindConfig))
		})

		It("does not overwrite entities across categories independently", func() {
			first := merge.Document{
				Source: "a.yaml",
				Config: &kubeconfig.Kubeconfig{
					Users: []kubeconfig.NamedUser{{Name: "admin", Details: kubeconfig.User{Token: "first"}}},
				},
			}
			second := merge.Document{
				Source: "b.yaml",
				Config: &kubeconfig.Kubeconfig{
					Users:    []kubeconfig.NamedUser{{Name: "admin", Details: kubeconfig.User{Token: "second"}}},
					Contexts: []kubeconfig.NamedContext{{Name: "admin", Details: kubeconfig.Context{Cluster: "c", User: "admin"}}},
				},
			}

			actual, err := merge.Merge([]merge.Document{first, second})

			Expect(err).ToNot(HaveOccurred())
			Expect(actual.Users).To(HaveLen(1))
			Expect(actual.Users[0].Details.Token).To(Equal("first"))
			Expect(actual.Contexts).To(HaveLen(1))
		})
	})
})
