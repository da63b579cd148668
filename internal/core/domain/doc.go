// Package domain defines the core business entities for Promptsmith.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A loaded documentation file for one tool
//   - Chunk: The unit of retrieval, with embedding and category
//   - ToolProfile: Static per-tool prompting configuration
//   - TaskContext / ProjectInfo: Immutable per-request input
//   - PromptResult: The assembled prompt plus scoring metadata
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
