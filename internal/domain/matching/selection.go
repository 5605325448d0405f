package matching

import (
	"sort"

	"github.com/google/uuid"
)

// Candidate is one scored entry in a ranking pass: a job when ranking jobs
// for a resume, a resume when ranking resumes for a job.
type Candidate struct {
	ID           uuid.UUID
	TotalPercent int
}

// SelectionPolicy governs how many candidates survive a ranking pass and
// what happens when nothing clears the quality floor.
type SelectionPolicy struct {
	MinScore    int
	TopN        int
	FallbackMax int
}

func DefaultSelectionPolicy() SelectionPolicy {
	return SelectionPolicy{
		MinScore:    20,
		TopN:        3,
		FallbackMax: 5,
	}
}

// SelectTop sorts candidates by score descending (stable: equal scores keep
// their input order), keeps the top N at or above MinScore, and falls back
// to the best FallbackMax overall when no candidate clears the floor, so a
// user is never shown an empty short-list while candidates exist. An empty
// input returns an empty slice.
func SelectTop(candidates []Candidate, pol SelectionPolicy) []Candidate {
	if len(candidates) == 0 {
		return []Candidate{}
	}

	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalPercent > sorted[j].TotalPercent
	})

	topN := pol.TopN
	if topN < 0 {
		topN = 0
	}

	selected := make([]Candidate, 0, topN)
	for _, c := range sorted {
		if c.TotalPercent < pol.MinScore {
			break
		}
		if len(selected) == topN {
			break
		}
		selected = append(selected, c)
	}

	if len(selected) > 0 {
		return selected
	}

	n := pol.FallbackMax
	if n > len(sorted) {
		n = len(sorted)
	}
	if n < 0 {
		n = 0
	}
	return sorted[:n]
}
