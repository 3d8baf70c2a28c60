// Package config loads Settings for a triangulation run: how many points
// to sample, which seed to sample them with, and where to write the
// rendered PNG. Settings load from an optional YAML file, then from
// TRI_-prefixed environment variables (which take precedence), then from
// functional options (which take precedence over both) — mirroring the
// reference launcher's config-merge order (file, then environment, then
// explicit overrides).
//
// A zero Seed means "choose one at random and report it", matching the
// reference settings.rs default_seed falling back to rand::random() —
// the resulting Settings always carries the seed actually used, so a run
// can be reproduced later from its logs.
package config
