// Package config defines the format-agnostic import model: the settings of
// one import run and the typed entity graph it operates on, along with the
// Loader interface implemented by format-specific packages such as
// internal/hcl.
package config
