// Package config provides configuration loading and defaults for readmelens.
package config

// DefaultConfigDir is the default location for readmelens configuration.
const DefaultConfigDir = "~/.config/readmelens"

// DefaultDBName is the filename for the SQLite scan cache.
const DefaultDBName = "readmelens.db"

// DefaultListenAddr is the default HTTP listen address for serve.
const DefaultListenAddr = ":8787"

// DefaultGitHub holds the default hosting endpoints and client timeout.
var DefaultGitHub = GitHub{
	APIBase:        "https://api.github.com",
	CodeloadBase:   "https://codeload.github.com",
	TimeoutSeconds: 30,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
}
