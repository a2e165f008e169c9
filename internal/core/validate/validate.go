// SPDX-FileCopyrightText:  © 2025 Siemens Healthineers AG
// SPDX-License-Identifier:   MIT

// Package validate checks the referential integrity of a merged kubeconfig.
//
// A context referencing a missing cluster or user only yields a warning, since
// such entries may simply be unused. A non-empty current-context naming a
// missing context is fatal, because it selects the operative configuration.
package validate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"github.com/siemens-healthineers/kubemerge/internal/contracts/kubeconfig"
)

// Warning names a dangling entity reference of one context.
type Warning struct {
	ContextName string
	RefKind     string
	RefName     string
}

// ErrCurrentContextNotFound indicates that the configured current-context does not
// name any context in the merged config.
var ErrCurrentContextNotFound = errors.New("current context not found in merged contexts")

const (
	RefKindCluster = "cluster"
	RefKindUser    = "user"
)

func (w Warning) String() string {
	return fmt.Sprintf("context '%s' references missing %s '%s'", w.ContextName, w.RefKind, w.RefName)
}

// Validate checks the given config and returns all warnings found.
// It fails only when the current-context is set but unresolvable.
func Validate(config *kubeconfig.Kubeconfig) ([]Warning, error) {
	if config.CurrentContext != "" {
		if _, err := config.FindContext(config.CurrentContext); err != nil {
			return nil, fmt.Errorf("current context '%s' not found in merged contexts: %w", config.CurrentContext, ErrCurrentContextNotFound)
		}
	}

	clusterNames := lo.Map(config.Clusters, func(c kubeconfig.NamedCluster, _ int) string { return c.Name })
	userNames := lo.Map(config.Users, func(u kubeconfig.NamedUser, _ int) string { return u.Name })

	var warnings []Warning
	for _, context := range config.Contexts {
		if !lo.Contains(clusterNames, context.Details.Cluster) {
			warning := Warning{ContextName: context.Name, RefKind: RefKindCluster, RefName: context.Details.Cluster}
			warnings = append(warnings, warning)

			slog.Warn("Dangling cluster reference", "context", context.Name, "cluster", context.Details.Cluster)
		}
		if !lo.Contains(userNames, context.Details.User) {
			warning := Warning{ContextName: context.Name, RefKind: RefKindUser, RefName: context.Details.User}
			warnings = append(warnings, warning)

			slog.Warn("Dangling user reference", "context", context.Name, "user", context.Details.User)
		}
	}
	return warnings, nil
}
