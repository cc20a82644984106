// Package resourceaccess implements the protected-resource access workflow
// inside aegis.
//
// Layering:
// - domain: core entities, access predicates, errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for identity store, resource catalog, idempotency
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under identity-access context.
// - The authentication gate lives at the platform layer; identity and scopes
//   arrive here as plain arguments, never from ambient request state.
// - Status-code mapping lives in the platform httpserver, not here.
package resourceaccess
