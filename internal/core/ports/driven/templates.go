package driven

import "github.com/promptsmith/promptsmith-cli/internal/core/domain"

// TemplateGeneric is the name of the process-wide fallback template.
// It is embedded in the binary and always resolvable.
const TemplateGeneric = "generic"

// Template is a named prompt rendering template.
type Template struct {
	// Name identifies the template for logging and AppliedStrategy.
	Name string

	// Text is Go text/template source.
	Text string
}

// TemplateStore resolves prompt rendering templates.
//
// Resolution is a fallback chain that never comes back empty:
// the profile's explicit template for the stage, then the
// "<tool>_<stage>" convention, then the tool's generic template, then
// the process-wide generic. A malformed template at one level is the
// renderer's problem; it simply moves on to the next candidate.
type TemplateStore interface {
	// Lookup returns the named template, false if absent.
	Lookup(name string) (Template, bool)

	// Chain returns candidate templates in fallback order for the given
	// tool and stage. preferred is the profile's explicit template name
	// for the stage, empty for none. The returned slice is never empty:
	// its last element is always the embedded process-wide generic.
	Chain(tool domain.SupportedTool, stage domain.Stage, preferred string) []Template
}
