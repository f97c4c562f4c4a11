// Package config handles configuration loading, parsing, and validation
// from defaults, an optional YAML file, an optional .env file and FLASHDECK_
// environment variables. It provides type-safe access to the settings
// needed by the server and the command-line client.
package config
