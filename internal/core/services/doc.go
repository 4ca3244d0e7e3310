// Package services implements the driving port interfaces.
// Services hold the benchmark logic and orchestrate calls to the
// driven ports (engines, key-value store, configuration).
//
// Services depend only on the domain, the ports and the generator;
// concrete adapters are injected by cmd/burrow.
package services
