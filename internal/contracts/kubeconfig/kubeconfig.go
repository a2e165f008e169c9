// SPDX-FileCopyrightText:  © 2025 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

package kubeconfig

import (
	"fmt"

	"github.com/samber/lo"
)

// Kubeconfig is the typed representation of one kubeconfig document.
// Unrecognized keys of the named entries survive in their Extra maps, so documents
// carrying schema fields this tool does not understand round-trip unchanged.
type Kubeconfig struct {
	APIVersion     string         `yaml:"apiVersion"`
	Kind           string         `yaml:"kind"`
	Clusters       []NamedCluster `yaml:"clusters,omitempty"`
	Contexts       []NamedContext `yaml:"contexts,omitempty"`
	Users          []NamedUser    `yaml:"users,omitempty"`
	CurrentContext string         `yaml:"current-context,omitempty"`
	Preferences    map[string]any `yaml:"preferences,omitempty"`
}

type NamedCluster struct {
	Name    string  `yaml:"name"`
	Details Cluster `yaml:"cluster"`
}

type Cluster struct {
	Cert          string         `yaml:"certificate-authority-data,omitempty"`
	CertFile      string         `yaml:"certificate-authority,omitempty"`
	Server        string         `yaml:"server"`
	SkipTLSVerify *bool          `yaml:"insecure-skip-tls-verify,omitempty"`
	Extra         map[string]any `yaml:",inline"`
}

type NamedContext struct {
	Name    string  `yaml:"name"`
	Details Context `yaml:"context"`
}

type Context struct {
	Cluster   string         `yaml:"cluster"`
	User      string         `yaml:"user"`
	Namespace string         `yaml:"namespace,omitempty"`
	Extra     map[string]any `yaml:",inline"`
}

type NamedUser struct {
	Name    string `yaml:"name"`
	Details User   `yaml:"user"`
}

// User carries credential material; no single field is required, a user without any
// credentials is valid.
type User struct {
	Cert     string         `yaml:"client-certificate-data,omitempty"`
	Key      string         `yaml:"client-key-data,omitempty"`
	CertFile string         `yaml:"client-certificate,omitempty"`
	KeyFile  string         `yaml:"client-key,omitempty"`
	Token    string         `yaml:"token,omitempty"`
	Username string         `yaml:"username,omitempty"`
	Password string         `yaml:"password,omitempty"`
	Extra    map[string]any `yaml:",inline"`
}

const (
	APIVersionV1 = "v1"
	KindConfig   = "Config"
)

// IsEmpty determines whether the document contributes nothing to a merge.
func (c *Kubeconfig) IsEmpty() bool {
	return len(c.Clusters) == 0 &&
		len(c.Contexts) == 0 &&
		len(c.Users) == 0 &&
		c.CurrentContext == "" &&
		len(c.Preferences) == 0
}

func (c *Kubeconfig) FindCluster(name string) (*NamedCluster, error) {
	cluster, found := lo.Find(c.Clusters, func(c NamedCluster) bool {
		return c.Name == name
	})
	if !found {
		return nil, fmt.Errorf("cluster '%s' not found in config", name)
	}
	return &cluster, nil
}

func (c *Kubeconfig) FindContext(name string) (*NamedContext, error) {
	context, found := lo.Find(c.Contexts, func(c NamedContext) bool {
		return c.Name == name
	})
	if !found {
		return nil, fmt.Errorf("context '%s' not found in config", name)
	}
	return &context, nil
}

func (c *Kubeconfig) FindUser(name string) (*NamedUser, error) {
	user, found := lo.Find(c.Users, func(u NamedUser) bool {
		return u.Name == name
	})
	if !found {
		return nil, fmt.Errorf("user '%s' not found in config", name)
	}
	return &user, nil
}
