// Package driving defines the interfaces that surfaces call IN to core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; the CLI (and any future surface) depends
// only on these interfaces, with concrete services injected at startup.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package, core/services
package driving
