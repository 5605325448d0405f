package matching

import "math"

// Config carries the tunable knobs of the scoring engine. There is no
// package-level mutable state; callers inject one Config per Engine.
type Config struct {
	// RequirementBoost multiplies the weight of a requirement field
	// (skills, degree, experience) when that field is present, so explicit
	// requirements dominate the general-text match. 1.0 disables boosting.
	RequirementBoost float64

	// Bigrams toggles two-word terms in the TF-IDF vocabulary, catching
	// phrases like "machine learning".
	Bigrams bool

	// StopWords overrides DefaultStopWords when non-nil.
	StopWords map[string]bool
}

func DefaultConfig() Config {
	return Config{
		RequirementBoost: 10.0,
		Bigrams:          true,
	}
}

// Job is the scoring engine's view of a job posting. All text fields are
// optional; a blank field contributes zero similarity and zero weight.
type Job struct {
	RequiredSkills string
	Degree         string
	Experience     string
	GeneralText    string

	SkillsWeight     float64
	DegreeWeight     float64
	ExperienceWeight float64
	GeneralWeight    float64
}

// MatchScore is the engine's output. TotalPercent is the weighted
// combination of the sub-scores plus an unreported general-text component.
type MatchScore struct {
	TotalPercent    int
	SkillsMatch     int
	DegreeMatch     int
	ExperienceMatch int
}

// WeightedSimilarity pairs a field similarity with its effective weight.
type WeightedSimilarity struct {
	Similarity float64
	Weight     float64
}

// Aggregate combines per-field similarities into one score in [0,1].
// Zero (or degenerate) total weight means there was nothing to compare.
// Aggregate trusts its inputs; the empty-field => zero-weight rule is
// enforced by Engine.Score.
func Aggregate(fields []WeightedSimilarity) float64 {
	var totalWeight float64
	for _, f := range fields {
		totalWeight += f.Weight
	}
	if totalWeight <= 0 {
		return 0
	}

	var sum float64
	for _, f := range fields {
		sum += f.Similarity * f.Weight
	}
	return sum / totalWeight
}

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.RequirementBoost <= 0 || math.IsNaN(cfg.RequirementBoost) {
		cfg.RequirementBoost = 1.0
	}
	return &Engine{cfg: cfg}
}

// Score computes the match between one resume and one job. Pure and
// deterministic: identical inputs always yield identical output, and no
// input, however degenerate, produces an error.
func (e *Engine) Score(resumeText string, job Job) MatchScore {
	if normalizeCompact(resumeText) == "" {
		return MatchScore{}
	}

	var skillsSim, degreeSim, expSim, generalSim float64
	var skillsW, degreeW, expW, generalW float64

	if normalizeCompact(job.RequiredSkills) != "" {
		skillsSim = SkillListScore(job.RequiredSkills, resumeText)
		skillsW = clampWeight(job.SkillsWeight) * e.cfg.RequirementBoost
	}

	if normalizeCompact(job.Degree) != "" {
		if DegreeMatches(job.Degree, resumeText) {
			degreeSim = 1.0
		} else {
			degreeSim = similarityWith(job.Degree, resumeText, e.cfg)
		}
		degreeW = clampWeight(job.DegreeWeight) * e.cfg.RequirementBoost
	}

	if normalizeCompact(job.Experience) != "" {
		expSim = similarityWith(job.Experience, resumeText, e.cfg)
		expW = clampWeight(job.ExperienceWeight) * e.cfg.RequirementBoost
	}

	if normalizeCompact(job.GeneralText) != "" {
		generalSim = similarityWith(job.GeneralText, resumeText, e.cfg)
		generalW = clampWeight(job.GeneralWeight)
	}

	total := Aggregate([]WeightedSimilarity{
		{Similarity: skillsSim, Weight: skillsW},
		{Similarity: degreeSim, Weight: degreeW},
		{Similarity: expSim, Weight: expW},
		{Similarity: generalSim, Weight: generalW},
	})

	return MatchScore{
		TotalPercent:    toPercent(total),
		SkillsMatch:     toPercent(skillsSim),
		DegreeMatch:     toPercent(degreeSim),
		ExperienceMatch: toPercent(expSim),
	}
}

// clampWeight maps negative and NaN weights to 0 at the engine boundary.
func clampWeight(w float64) float64 {
	if math.IsNaN(w) || w < 0 {
		return 0
	}
	return w
}

func toPercent(fraction float64) int {
	p := int(math.Round(fraction * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
