// Package flags provides read-only feature flags loaded from the `flags`
// config section. Unknown or missing flags read as false.
package flags

import (
	"maps"
	"slices"

	"github.com/interviewfun/authtui/internal/log"
)

const (
	// FlagBlockSocialWhilePending disables the social sign-in buttons while a
	// submission is in flight. Off by default: social buttons stay usable
	// while the primary submit button is disabled.
	FlagBlockSocialWhilePending = "block-social-while-pending"

	// FlagLegalPages routes the terms/privacy footer links to in-app pages.
	// Registered as default-on in Known.
	FlagLegalPages = "legal-pages"
)

// Known lists every flag the application reads, with its default.
var Known = map[string]bool{
	FlagBlockSocialWhilePending: false,
	FlagLegalPages:              true,
}

// Registry holds feature flag state.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from a config map layered over Known defaults.
func New(configured map[string]bool) *Registry {
	merged := maps.Clone(Known)
	for name, v := range configured {
		if _, ok := Known[name]; !ok {
			log.Warn(log.CatConfig, "Unknown feature flag in config", "flag", name)
		}
		merged[name] = v
	}
	r := &Registry{flags: merged}
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(merged), "enabled", r.EnabledNames())
	return r
}

// Enabled reports whether the named flag is on. Nil-safe.
func (r *Registry) Enabled(name string) bool {
	if r == nil || r.flags == nil {
		return false
	}
	return r.flags[name]
}

// EnabledNames returns the sorted names of enabled flags.
func (r *Registry) EnabledNames() []string {
	if r == nil {
		return nil
	}
	var names []string
	for name, on := range r.flags {
		if on {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// All returns a copy of all flags.
func (r *Registry) All() map[string]bool {
	if r == nil || r.flags == nil {
		return make(map[string]bool)
	}
	return maps.Clone(r.flags)
}
