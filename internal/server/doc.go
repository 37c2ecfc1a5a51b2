// Package server runs the REST API: startup, signal handling and graceful
// shutdown.
package server
