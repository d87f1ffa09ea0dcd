// Package config loads and validates Alert Console configuration.
//
// Configuration is layered: hardcoded defaults, then YAML file values,
// then ALERTCONSOLE_* environment variable overrides. Validation runs
// after all layers are applied; the process refuses to start with an
// invalid configuration (in particular a missing or weak JWT secret).
package config
