package matching

import "testing"

func testJob() Job {
	return Job{
		RequiredSkills:   "python,fastapi",
		Degree:           "Bachelor",
		Experience:       "5 years",
		GeneralText:      "Looking for a Python developer",
		SkillsWeight:     1,
		DegreeWeight:     1,
		ExperienceWeight: 1,
		GeneralWeight:    1,
	}
}

func TestScoreEmptyResume(t *testing.T) {
	e := NewEngine(DefaultConfig())
	got := e.Score("", testJob())
	if got != (MatchScore{}) {
		t.Fatalf("expected all-zero score for empty resume, got %+v", got)
	}
	if got = e.Score("   \n\t ", testJob()); got != (MatchScore{}) {
		t.Fatalf("expected all-zero score for blank resume, got %+v", got)
	}
}

func TestScoreAllEmptyJobFields(t *testing.T) {
	e := NewEngine(DefaultConfig())
	job := Job{
		SkillsWeight:     5,
		DegreeWeight:     5,
		ExperienceWeight: 5,
		GeneralWeight:    5,
	}
	got := e.Score("a perfectly good resume about python", job)
	if got.TotalPercent != 0 {
		t.Fatalf("expected 0 total for all-empty job fields, got %d", got.TotalPercent)
	}
}

func TestScoreEmptyFieldZeroesWeight(t *testing.T) {
	// The weight of an absent requirement must have no effect on the total.
	e := NewEngine(DefaultConfig())
	resume := "Python developer with a Bachelor degree and 5 years of experience"

	jobA := testJob()
	jobA.RequiredSkills = ""
	jobA.SkillsWeight = 10.0

	jobB := testJob()
	jobB.RequiredSkills = ""
	jobB.SkillsWeight = 1.0

	a := e.Score(resume, jobA)
	b := e.Score(resume, jobB)
	if a.TotalPercent != b.TotalPercent {
		t.Fatalf("empty-field weight leaked into total: %d vs %d", a.TotalPercent, b.TotalPercent)
	}
	if a.SkillsMatch != 0 {
		t.Fatalf("expected 0 skills sub-score for empty skill list, got %d", a.SkillsMatch)
	}
}

func TestScoreEndToEnd(t *testing.T) {
	e := NewEngine(DefaultConfig())
	resume := "Python developer with FastAPI experience, 5 years, Bachelor's degree"

	got := e.Score(resume, testJob())
	if got.SkillsMatch != 100 {
		t.Fatalf("expected skills 100, got %d", got.SkillsMatch)
	}
	if got.DegreeMatch != 100 {
		t.Fatalf("expected degree 100, got %d", got.DegreeMatch)
	}
	if got.ExperienceMatch != 100 {
		t.Fatalf("expected experience 100, got %d", got.ExperienceMatch)
	}
	if got.TotalPercent <= 90 || got.TotalPercent > 100 {
		t.Fatalf("expected total in (90,100], got %d", got.TotalPercent)
	}
}

func TestScoreBounds(t *testing.T) {
	e := NewEngine(DefaultConfig())
	resumes := []string{
		"",
		"short",
		"a long resume full of words about go postgres redis docker kubernetes",
	}
	jobs := []Job{
		{},
		testJob(),
		{GeneralText: "anything at all", GeneralWeight: 1000},
		{RequiredSkills: "go", SkillsWeight: -5, GeneralText: "go services", GeneralWeight: 1},
	}
	for _, r := range resumes {
		for _, j := range jobs {
			s := e.Score(r, j)
			for _, v := range []int{s.TotalPercent, s.SkillsMatch, s.DegreeMatch, s.ExperienceMatch} {
				if v < 0 || v > 100 {
					t.Fatalf("score out of bounds: %+v", s)
				}
			}
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	e := NewEngine(DefaultConfig())
	resume := "Go developer, 3 years, BSc, gRPC and PostgreSQL"
	job := Job{
		RequiredSkills:   "go,grpc,postgresql",
		Degree:           "BSc",
		Experience:       "3 years",
		GeneralText:      "Backend Go engineer for a payments platform",
		SkillsWeight:     2,
		DegreeWeight:     1,
		ExperienceWeight: 1,
		GeneralWeight:    1,
	}

	first := e.Score(resume, job)
	for i := 0; i < 20; i++ {
		if got := e.Score(resume, job); got != first {
			t.Fatalf("score not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestScoreNegativeWeightClamped(t *testing.T) {
	e := NewEngine(DefaultConfig())
	resume := "python developer"
	job := Job{
		RequiredSkills: "python",
		SkillsWeight:   -3,
		GeneralText:    "python role",
		GeneralWeight:  1,
	}
	got := e.Score(resume, job)
	if got.TotalPercent < 0 || got.TotalPercent > 100 {
		t.Fatalf("negative weight produced out-of-range total: %+v", got)
	}
	// Skills weight clamps to 0, so the total reduces to the general match.
	onlyGeneral := e.Score(resume, Job{GeneralText: "python role", GeneralWeight: 1})
	if got.TotalPercent != onlyGeneral.TotalPercent {
		t.Fatalf("clamped weight still influenced total: %d vs %d", got.TotalPercent, onlyGeneral.TotalPercent)
	}
}

func TestScoreRequirementBoostDominates(t *testing.T) {
	resume := "python developer, bachelor degree, 5 years experience"
	job := Job{
		RequiredSkills: "python",
		SkillsWeight:   1,
		GeneralText:    "completely unrelated gardening text about flowers",
		GeneralWeight:  1,
	}

	boosted := NewEngine(Config{RequirementBoost: 10, Bigrams: true}).Score(resume, job)
	flat := NewEngine(Config{RequirementBoost: 1, Bigrams: true}).Score(resume, job)
	if boosted.TotalPercent <= flat.TotalPercent {
		t.Fatalf("boost should raise the requirement's share: boosted=%d flat=%d",
			boosted.TotalPercent, flat.TotalPercent)
	}
}

func TestAggregate(t *testing.T) {
	if got := Aggregate(nil); got != 0 {
		t.Fatalf("expected 0 for no fields, got %v", got)
	}
	if got := Aggregate([]WeightedSimilarity{{Similarity: 1, Weight: 0}}); got != 0 {
		t.Fatalf("expected 0 for zero total weight, got %v", got)
	}
	got := Aggregate([]WeightedSimilarity{
		{Similarity: 1.0, Weight: 1},
		{Similarity: 0.0, Weight: 1},
	})
	if got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
}
