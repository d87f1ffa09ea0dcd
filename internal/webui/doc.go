// Package webui serves the Alert Console frontend bundle as an embedded asset.
//
// The compiled frontend build is embedded into the Go binary using the
// go:embed directive, eliminating any runtime dependency on external
// files. Handler returns an http.Handler that serves these assets with
// SPA (Single Page Application) fallback routing: if a requested file
// does not exist, index.html is served so that client-side routing
// works correctly.
package webui
