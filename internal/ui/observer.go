package ui

// visibilityThreshold is the fraction of a section that must be on screen before scroll mode
// treats it as the current one.
const visibilityThreshold = 0.5

// span is the line range [start, end) a section occupies in the scroll viewport.
type span struct {
	start int
	end   int
}

// intersecting returns the index of the most visible span whose visible ratio reaches
// threshold for a viewport showing lines [top, top+height). Ties go to the earlier span.
// It returns -1 when no span qualifies.
func intersecting(spans []span, top int, height int, threshold float64) int {
	best := -1
	bestRatio := 0.0
	bottom := top + height

	for idx, sp := range spans {
		size := sp.end - sp.start
		if size <= 0 || height <= 0 {
			continue
		}

		visible := min(sp.end, bottom) - max(sp.start, top)
		if visible <= 0 {
			continue
		}

		// A section taller than the viewport can never be more than one screen visible.
		ratio := float64(visible) / float64(min(size, height))
		if ratio >= threshold && ratio > bestRatio {
			best = idx
			bestRatio = ratio
		}
	}

	return best
}
