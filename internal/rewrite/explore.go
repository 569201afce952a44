package rewrite

import "github.com/google/uuid"

// explorationLabels are the fixed path labels shown in the multi-path view.
// Every path runs the identical pipeline; labels, descriptions, and
// confidence offsets are presentation only.
var explorationLabels = []struct {
	label       string
	description string
	offset      float64
}{
	{"direct", "Rewrite the prompt in a single pass", 0},
	{"structured", "Lead with structure and constraints", 0.02},
	{"exploratory", "Surface alternative phrasings first", 0.05},
}

// Path is one labeled run of the pipeline inside an exploration. ID is a
// display identifier only and never influences the content.
type Path struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
	Result      Result  `json:"result"`
}

// Exploration presents one rewrite as a small multi-path trace. All paths
// hold byte-identical results; Selected points at the winner.
type Exploration struct {
	Paths    []Path `json:"paths"`
	Selected int    `json:"selected"`
	Result   Result `json:"result"`
}

// Explore dresses a rewrite up as a three-path exploration. It is a cosmetic
// wrapper around Optimize, not a search: every path runs the same
// deterministic pipeline with the same inputs. Confidence is derived from the
// path's own scores minus a fixed per-label offset; the highest confidence
// wins and ties go to the earliest path. Only the path IDs vary between
// calls.
func Explore(rawPrompt string, opts Options) Exploration {
	paths := make([]Path, 0, len(explorationLabels))
	best := 0
	for i, l := range explorationLabels {
		r := Optimize(rawPrompt, opts)
		confidence := float64(r.Metadata.ComplexityScore+r.Metadata.ClarityScore)/200 - l.offset
		if confidence < 0 {
			confidence = 0
		}
		paths = append(paths, Path{
			ID:          uuid.NewString(),
			Label:       l.label,
			Description: l.description,
			Confidence:  confidence,
			Result:      r,
		})
		if combinedScore(r) > combinedScore(paths[best].Result) {
			best = i
		}
	}
	return Exploration{Paths: paths, Selected: best, Result: paths[best].Result}
}

func combinedScore(r Result) int {
	return r.Metadata.ComplexityScore + r.Metadata.ClarityScore
}
