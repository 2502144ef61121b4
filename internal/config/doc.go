// Package config handles configuration loading and resolution for logcolor.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. Environment variables (LOGCOLOR_ADB, LOGCOLOR_WIDTH, LOGCOLOR_ON_UNKNOWN, LOGCOLOR_DEBUG)
//  2. Config file
//  3. Hardcoded defaults
//
// Command-line arguments are not part of the chain: they are forwarded
// verbatim to the log-producing subprocess.
//
// # Config File Lookup
//
// The first existing file wins:
//
//  1. $LOGCOLOR_CONFIG
//  2. ./.logcolor.yaml
//  3. <user config dir>/logcolor/config.yaml
//  4. <user config dir>/logcolor/config.toml
//
// Files ending in .toml are decoded as TOML, everything else as YAML.
//
// # Example
//
//	adb: /opt/android/platform-tools/adb
//	fallback_width: 120
//	on_unknown_severity: skip
//	highlight_pairs: true
//	log_level: info
package config
