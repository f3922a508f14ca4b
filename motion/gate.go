// Package motion samples the reduced-motion preference that every time-driven component branches on
package motion

import (
	"os"
	"strings"
)

// EnvReducedMotion is the host environment variable carrying the user preference
const EnvReducedMotion = "NEONOPS_REDUCED_MOTION"

// Preference sources
const (
	SourceDefault     = "default"
	SourceEnvironment = "env"
	SourceConfig      = "config"
	SourceFlag        = "flag"
)

// Preference is the reduced-motion flag sampled once per mount
type Preference struct {
	Reduce bool
	Source string
}

// Animate reports whether continuous animation is allowed
func (p Preference) Animate() bool {
	return !p.Reduce
}

// Reduced returns a preference that snaps every component to its final state
func Reduced() Preference {
	return Preference{Reduce: true, Source: SourceDefault}
}

// Full returns a preference that runs every animation
func Full() Preference {
	return Preference{Reduce: false, Source: SourceDefault}
}

// Detect reads the preference from the environment through lookup, nil lookup uses os.LookupEnv
func Detect(lookup func(string) (string, bool)) Preference {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	raw, ok := lookup(EnvReducedMotion)
	if !ok {
		return Full()
	}
	reduce, ok := parseBool(raw)
	if !ok {
		return Full()
	}
	return Preference{Reduce: reduce, Source: SourceEnvironment}
}

// Override replaces p when v is set, tagging the result with source
func (p Preference) Override(v *bool, source string) Preference {
	if v == nil {
		return p
	}
	return Preference{Reduce: *v, Source: source}
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "reduce":
		return true, true
	case "0", "false", "no", "off", "no-preference", "":
		return false, true
	}
	return false, false
}
