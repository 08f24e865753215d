// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines the
// configuration structure for server settings: the listen port and the API key
// guarding the browse endpoints.
//
// This package is primarily used by the core/config package to embed server
// settings.
package server
