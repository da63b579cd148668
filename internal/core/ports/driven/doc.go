// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentLoader: Reads documentation files from per-tool folders
//   - ProfileStore: Loads static per-tool prompting configuration
//   - TemplateStore: Resolves rendering templates with guaranteed fallback
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - EmbeddingService: Generates vector embeddings. Without it, retrieval
//     is disabled and assembly is template-only.
//   - VectorIndex: Persistent vector storage/search (chromem). Only useful
//     when EmbeddingService is configured.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
