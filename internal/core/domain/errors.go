package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownTool indicates a tool identifier outside the closed
	// SupportedTool enumeration. Callers recover via the default profile;
	// this is never surfaced as a hard failure to the end user.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrUnknownStage indicates a stage name outside the Stage enumeration.
	ErrUnknownStage = errors.New("unknown stage")

	// ErrProviderUnavailable indicates the embedding provider call failed
	// (missing credentials, network error, timeout, quota). Retrieval-only
	// callers degrade to template-only assembly instead of failing.
	ErrProviderUnavailable = errors.New("embedding provider unavailable")

	// ErrIndexMissing indicates the persisted vector index is absent.
	// Queries treat this as an empty result set, not an error.
	ErrIndexMissing = errors.New("vector index missing")

	// ErrTemplateRender indicates a template failed to parse or execute.
	// Recovered by the template fallback chain, ultimately by the minimal
	// fixed-format prompt.
	ErrTemplateRender = errors.New("template render failed")
)
