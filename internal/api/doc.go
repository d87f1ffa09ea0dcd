// Package api provides the HTTP REST API for Alert Console.
//
// It exposes login/logout/identity endpoints, admin-only user
// administration, a system-status report, and the embedded frontend
// bundle. Protected routes pass through the access gate middleware,
// which resolves a session token (bearer header or cookie) into claims
// on the request context; admin routes add an exact role check on top.
//
// The server follows a simple lifecycle:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Thread Safety: All methods are safe for concurrent use from multiple goroutines.
package api
