// Package file provides the file-backed configuration store.
// Settings live in config.toml inside the burrow config directory,
// grouped into TOML tables by the prefix of their dotted keys.
package file
