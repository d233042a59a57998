// Package server runs the application's HTTP transport: startup, OS
// signal handling and graceful shutdown.
package server
