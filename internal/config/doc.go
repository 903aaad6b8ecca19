// Package config loads, normalizes, and validates drivewise configuration.
//
// Configuration comes from a TOML file resolved in this order: an explicit
// --config path, ~/.config/drivewise/config.toml, then a project-local
// drivewise.toml. Missing files are not an error; defaults apply and the
// caller is told the file did not exist. All path fields are expanded
// (including ~) and made absolute before anything else sees them.
package config
