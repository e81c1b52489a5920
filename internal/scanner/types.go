// Package scanner implements the onboarding-friendliness heuristics: file
// presence probes, README heading extraction, section coverage, scoring,
// and remediation suggestions.
package scanner

// Result is the outcome of one scan over an extracted repository tree.
// It is the payload cached per (owner, repo, sha) and must round-trip
// losslessly through JSON.
type Result struct {
	// Files maps logical doc keys (LICENSE, CONTRIBUTING, ...) to the
	// relative path found, or nil when absent. The six named doc keys are
	// always present; build-tool filenames appear only when found.
	Files map[string]*string `json:"files"`

	// Readme describes the located README, if any.
	Readme Readme `json:"readme"`

	// Score is the aggregate onboarding score, clamped to [0, 100].
	Score int `json:"score"`

	// Suggestions are remediation hints in fixed priority order:
	// README first, then per-section, then file-level.
	Suggestions []string `json:"suggestions"`
}

// Readme holds the README probe outcome and its section coverage.
type Readme struct {
	// Path is the README filename relative to the scanned root, or nil.
	Path *string `json:"path"`

	// Headings are the normalized ATX headings in document order.
	Headings []string `json:"headings"`

	// Sections maps each of the six section categories to whether any
	// heading matched one of its variants. Always exactly six keys.
	Sections map[string]bool `json:"sections"`
}
