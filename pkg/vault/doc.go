// Package vault provides a typed Go client for the DocVault REST API.
//
// # Overview
//
// The client is a thin binding: every operation validates its arguments,
// builds a resource path and optional JSON body, issues one HTTP request
// through a shared Transport, and decodes the response into a typed result.
// There is no caching, batching, or local state between calls.
//
// A Client is immutable after construction and safe for concurrent use.
// All operations take a context.Context and block until the server responds,
// the context is cancelled, or the transport gives up.
//
//	cfg := vault.DefaultConfig()
//	cfg.BaseURL = "https://vault.example.com"
//	cfg.AuthToken = os.Getenv("DOCVAULT_TOKEN")
//
//	client, err := vault.NewClient(cfg)
//	if err != nil {
//		return err
//	}
//	ver, err := client.Objects.CheckOut(ctx, vault.ObjID{Type: 0, ID: 42})
//
// # API Endpoints
//
// All paths are relative to {BaseURL}/REST.
//
// Objects:
//   - POST   objects/:type
//   - GET    objects/:type/:id/latest
//   - GET    objects/:type/:id/history
//   - GET    objects/:type/:id/deleted
//   - PUT    objects/:type/:id/deleted
//   - GET    objects/:type/:id/:version/checkedout  (":version" may be "latest")
//   - PUT    objects/:type/:id/:version/checkedout
//   - DELETE objects/:type/:id/:version/checkedout
//
// Favorites:
//   - GET    favorites
//   - POST   favorites
//   - DELETE favorites/:type/:id
//
// # Error Handling
//
// Failures are typed: InvalidArgumentError (local precondition violation,
// no request issued), RequestFailedError (non-2xx response with the server's
// status and message), DecodingError (response body did not match the
// expected shape), and CancelledError (context cancelled or deadline hit).
// Use the Is* helpers or errors.As to classify an error.
//
// The Transport retries connection failures and 5xx responses with
// exponential backoff; 4xx responses are never retried. No retry or recovery
// happens above the transport.
package vault
