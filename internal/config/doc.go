// Package config manages user-level settings stored at ~/.petor/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the template catalog location used by the new, list, and generate commands.
package config
