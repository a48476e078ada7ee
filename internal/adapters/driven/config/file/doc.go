// Package file provides a TOML-backed implementation of the ConfigStore
// port. Configuration lives in ~/.relnotes/config.toml by default and holds
// the GitHub token plus default flag values.
package file
