// Package flags provides feature flag support for optional menu features.
// Flags are read-only after initialization and default to disabled.
package flags

import (
	"maps"
	"slices"

	"github.com/campusctl/campus/internal/log"
)

// Flag name constants for type-safe flag access.
const (
	// FlagActivityPanel shows the live activity panel under the main menu.
	FlagActivityPanel = "activity-panel"

	// FlagCourseRoster adds the "List Students in Course" menu entry.
	FlagCourseRoster = "course-roster"
)

// Known returns every flag name the application understands, sorted.
func Known() []string {
	return []string{FlagActivityPanel, FlagCourseRoster}
}

// Registry holds feature flag state loaded from configuration.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from a config map. A nil map disables every flag.
func New(flags map[string]bool) *Registry {
	if flags == nil {
		flags = make(map[string]bool)
	}
	r := &Registry{flags: maps.Clone(flags)}
	for name := range flags {
		if !slices.Contains(Known(), name) {
			log.Warn(log.CatConfig, "Unknown feature flag in config", "flag", name)
		}
	}
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(flags), "flags", r.All())
	return r
}

// Enabled returns true if the named flag is enabled.
// Unknown flags and a nil registry report false.
func (r *Registry) Enabled(name string) bool {
	if r == nil || r.flags == nil {
		return false
	}
	return r.flags[name]
}

// All returns a copy of all flags.
func (r *Registry) All() map[string]bool {
	if r == nil || r.flags == nil {
		return make(map[string]bool)
	}
	return maps.Clone(r.flags)
}
