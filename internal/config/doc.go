// Package config loads and validates the watcher configuration.
//
// Configuration is YAML with ${VAR} environment-variable expansion.
// Loading is split into three steps: Load (parse), applyDefaults (fill
// optional fields), Validate (reject unusable values); LoadAndValidate
// runs all three.
package config
