// Package internal documents the club management server internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, rendering, and routing
// - domain: business logic and domain models
// - storage: the document store and repositories (JSONB on Postgres)
// - auth, config, metrics: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
