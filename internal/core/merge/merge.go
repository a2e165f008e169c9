// SPDX-FileCopyrightText:  © 2025 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

// Package merge folds an ordered sequence of kubeconfig documents into one.
//
// Precedence is document order: for clusters, contexts and users the first
// occurrence of a name wins and later occurrences are discarded, and the first
// non-empty current-context wins. Preferences go the other way, a later
// document's value overwrites an earlier one's for the same key. This asymmetry
// matches the long-standing behavior of the tool and is kept on purpose.
package merge

import (
	"errors"
	"log/slog"

	"github.com/samber/lo"
	"github.com/siemens-healthineers/kubemerge/internal/contracts/kubeconfig"
)

// Document is one parsed kubeconfig plus its provenance identifier, e.g. the file path.
type Document struct {
	Source string
	Config *kubeconfig.Kubeconfig
}

// ErrNothingToMerge indicates that not a single entity, current-context or
// preference key was contributed by any input document.
var ErrNothingToMerge = errors.New("no kubeconfig document contributed any content")

// Merge folds the given documents in order into one canonical kubeconfig.
// Blank documents are skipped silently. The result always carries the canonical
// apiVersion and kind values, regardless of what the inputs declared.
func Merge(documents []Document) (*kubeconfig.Kubeconfig, error) {
	merged := &kubeconfig.Kubeconfig{
		APIVersion: kubeconfig.APIVersionV1,
		Kind:       kubeconfig.KindConfig,
	}
	preferences := map[string]any{}
	contributed := false

	for _, document := range documents {
		slog.Debug("Merging document", "source", document.Source)

		if document.Config == nil || document.Config.IsEmpty() {
			slog.Debug("Skipping blank document", "source", document.Source)
			continue
		}

		added := addEntities(merged, document.Config)
		if added > 0 {
			contributed = true
			slog.Info("Added entries", "count", added, "source", document.Source)
		} else {
			slog.Debug("No new entries added", "source", document.Source)
		}

		if merged.CurrentContext == "" && document.Config.CurrentContext != "" {
			merged.CurrentContext = document.Config.CurrentContext
			contributed = true

			slog.Info("Using current-context", "current-context", merged.CurrentContext, "source", document.Source)
		}

		for key, value := range document.Config.Preferences {
			preferences[key] = value
			contributed = true
		}
	}

	if !contributed {
		return nil, ErrNothingToMerge
	}

	if len(preferences) > 0 {
		merged.Preferences = preferences
	}
	return merged, nil
}

func addEntities(merged *kubeconfig.Kubeconfig, config *kubeconfig.Kubeconfig) (added int) {
	for _, cluster := range config.Clusters {
		if hasCluster(merged, cluster.Name) {
			slog.Debug("Skipping duplicate cluster", "name", cluster.Name)
			continue
		}
		merged.Clusters = append(merged.Clusters, cluster)
		added++
	}

	for _, context := range config.Contexts {
		if hasContext(merged, context.Name) {
			slog.Debug("Skipping duplicate context", "name", context.Name)
			continue
		}
		merged.Contexts = append(merged.Contexts, context)
		added++
	}

	for _, user := range config.Users {
		if hasUser(merged, user.Name) {
			slog.Debug("Skipping duplicate user", "name", user.Name)
			continue
		}
		merged.Users = append(merged.Users, user)
		added++
	}
	return added
}

func hasCluster(config *kubeconfig.Kubeconfig, name string) bool {
	return lo.SomeBy(config.Clusters, func(c kubeconfig.NamedCluster) bool { return c.Name == name })
}

func hasContext(config *kubeconfig.Kubeconfig, name string) bool {
	return lo.SomeBy(config.Contexts, func(c kubeconfig.NamedContext) bool { return c.Name == name })
}

func hasUser(config *kubeconfig.Kubeconfig, name string) bool {
	return lo.SomeBy(config.Users, func(u kubeconfig.NamedUser) bool { return u.Name == name })
}
