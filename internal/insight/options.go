// Package insight assembles policy-compliant daily and weekly insight
// messages from raw upstream payloads. Formatters are pure: the same
// payload, reference date, and random seed always produce the same
// output, and no input can make them fail or emit an empty message.
package insight

import (
	"math/rand"

	"flarecast/internal/repair"
	"flarecast/internal/similarity"
)

// FormatterOptions carries the tunable constants of the pipeline.
// The defaults are the contractual values; config may override them.
type FormatterOptions struct {
	// Thresholds are the near-duplicate cutoffs for the similarity engine.
	Thresholds similarity.Thresholds

	// RepairMinLength is the template-repair cutoff below which a
	// cleaned weekly summary collapses to a canned sentence.
	RepairMinLength int

	// Rand drives catalog selection in vague rewrites. Nil means the
	// first catalog entry is always chosen, which keeps output
	// deterministic by default; callers wanting variety inject a
	// seeded source.
	Rand *rand.Rand
}

// DefaultFormatterOptions returns the contractual pipeline constants.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		Thresholds:      similarity.DefaultThresholds(),
		RepairMinLength: repair.MinLength,
	}
}
