// Package defaults provides centralized configuration constants for soma.
//
// This package defines timeout values and other configuration defaults used
// across the codebase. Centralizing these values ensures consistency and
// makes tuning easier.
package defaults
